package utils

import (
	"fmt"
	"os"
	"path"
)

// GetMaiConfigDir returns the path to the mai configuration directory.
// The directory is located inside the user's configuration directory
// as <UserConfigDir>/mai, unless overridden by MAI_CONFIG_DIR.
func GetMaiConfigDir() (string, error) {
	if maiConfigDir := os.Getenv("MAI_CONFIG_DIR"); maiConfigDir != "" {
		return maiConfigDir, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return path.Join(cfg, "mai"), nil
}
