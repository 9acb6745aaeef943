package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// CreateConfigDir ensures the mai config directory exists.
func CreateConfigDir(configDirPath string) error {
	if _, err := os.Stat(configDirPath); os.IsNotExist(err) {
		if err := os.MkdirAll(configDirPath, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		ancli.Okf("created config directory at: '%v'\n", configDirPath)
	}
	return nil
}

func createDefaultConfigFile[T any](configDirPath, configFileName string, dflt *T) error {
	configFilePath := filepath.Join(configDirPath, configFileName)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		if misc.Truthy(os.Getenv("DEBUG")) {
			ancli.PrintOK(fmt.Sprintf("attempting to create file: '%v'\n", configFilePath))
		}
		if err := CreateFile(configFilePath, dflt); err != nil {
			return fmt.Errorf("failed to write config: '%v', error: %w", configFileName, err)
		}
	}
	return nil
}

// LoadConfigFromFile if config exists. If non existent, create a new config
// using default. Run migrationCb after config has been created or fetched
func LoadConfigFromFile[T any](
	configDirPath,
	configFileName string,
	migrationCb func(string) error,
	dflt *T,
) (T, error) {
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("attempting to load file: %v\n", filepath.Join(configDirPath, configFileName)))
	}
	var nilVal T
	if err := CreateConfigDir(configDirPath); err != nil {
		return nilVal, fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := createDefaultConfigFile(configDirPath, configFileName, dflt); err != nil {
		return nilVal, fmt.Errorf("failed to create default: %w", err)
	}
	if migrationCb != nil {
		if err := migrationCb(configDirPath); err != nil {
			ancli.PrintWarn(fmt.Sprintf("failed to migrate for config: '%v', error: %v\n", configFileName, err))
		}
	}
	var conf T
	if err := ReadAndUnmarshal(filepath.Join(configDirPath, configFileName), &conf); err != nil {
		return conf, fmt.Errorf("failed to unmarshal config '%v', error: %v", configFileName, err)
	}

	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("found config: %+v\n", conf))
	}
	return conf, nil
}

func ReturnNonDefault[T comparable](a, b, defaultVal T) (T, error) {
	if a != defaultVal && b != defaultVal {
		return defaultVal, fmt.Errorf("values are mutually exclusive")
	}
	if a != defaultVal {
		return a, nil
	}
	if b != defaultVal {
		return b, nil
	}
	return defaultVal, nil
}
