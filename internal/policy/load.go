package policy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/baalimago/mai/internal/utils"
)

const fileName = "policy.toml"

// Path returns the fully qualified policy.toml path.
func Path(configDirPath string) string {
	return filepath.Join(configDirPath, fileName)
}

// Load the policy from <configDirPath>/policy.toml, creating the file
// with defaults when missing.
func Load(configDirPath string) (*Policy, error) {
	if err := utils.CreateConfigDir(configDirPath); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}
	path := Path(configDirPath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(Default(), path); err != nil {
			return nil, fmt.Errorf("failed to create default policy: %w", err)
		}
	}
	var p Policy
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("failed to decode policy file: %w", err)
	}
	return &p, nil
}

// LoadFile decodes the policy at an explicit path, without the
// create-on-missing behavior of Load.
func LoadFile(path string) (*Policy, error) {
	var p Policy
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("failed to decode policy file '%v': %w", path, err)
	}
	return &p, nil
}

// Save the policy as TOML to path.
func Save(p *Policy, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create policy file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# mai triage and response policy")
	fmt.Fprintln(file, "# Tune these rules to your own inbox habits")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(p); err != nil {
		return fmt.Errorf("failed to encode policy: %w", err)
	}
	return nil
}
