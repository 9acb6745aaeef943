package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReturnNonDefault(t *testing.T) {
	tests := []struct {
		name       string
		a          string
		b          string
		defaultVal string
		want       string
		wantErr    bool
	}{
		{
			name:       "Both defaults",
			a:          "default",
			b:          "default",
			defaultVal: "default",
			want:       "default",
			wantErr:    false,
		},
		{
			name:       "A non-default",
			a:          "non-default",
			b:          "default",
			defaultVal: "default",
			want:       "non-default",
			wantErr:    false,
		},
		{
			name:       "B non-default",
			a:          "default",
			b:          "non-default",
			defaultVal: "default",
			want:       "non-default",
			wantErr:    false,
		},
		{
			name:       "Both non-default",
			a:          "non-default-a",
			b:          "non-default-b",
			defaultVal: "default",
			want:       "default",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReturnNonDefault(tt.a, tt.b, tt.defaultVal)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReturnNonDefault() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ReturnNonDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateConfigDir(t *testing.T) {
	configDirPath := filepath.Join(t.TempDir(), ".mai")

	err := CreateConfigDir(configDirPath)
	if err != nil {
		t.Errorf("Unexpected error creating config directory: %v", err)
	}
	if _, err := os.Stat(configDirPath); os.IsNotExist(err) {
		t.Error("Expected config directory to exist")
	}

	// Idempotent on existing directory
	err = CreateConfigDir(configDirPath)
	if err != nil {
		t.Errorf("Unexpected error creating existing config directory: %v", err)
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	configDirPath := filepath.Join(t.TempDir(), ".mai")
	os.MkdirAll(configDirPath, 0o755)
	configFileName := "config.json"

	dflt := &struct {
		Name string `json:"name"`
	}{Name: "John"}
	err := createDefaultConfigFile(configDirPath, configFileName, dflt)
	if err != nil {
		t.Errorf("Unexpected error creating default config file: %v", err)
	}
	configFilePath := filepath.Join(configDirPath, configFileName)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		t.Error("Expected default config file to exist")
	}

	err = createDefaultConfigFile(configDirPath, configFileName, dflt)
	if err != nil {
		t.Errorf("Unexpected error creating existing default config file: %v", err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	type testConfig struct {
		Name string `json:"name"`
	}

	t.Run("creates default when missing", func(t *testing.T) {
		configDirPath := t.TempDir()
		got, err := LoadConfigFromFile(configDirPath, "test.json", nil, &testConfig{Name: "dflt"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.Name != "dflt" {
			t.Errorf("expected default config, got: %+v", got)
		}
		if _, err := os.Stat(filepath.Join(configDirPath, "test.json")); os.IsNotExist(err) {
			t.Error("Expected config file to have been created")
		}
	})

	t.Run("reads existing config", func(t *testing.T) {
		configDirPath := t.TempDir()
		existing := testConfig{Name: "already-here"}
		if err := CreateFile(filepath.Join(configDirPath, "test.json"), &existing); err != nil {
			t.Fatalf("failed to setup test: %v", err)
		}
		got, err := LoadConfigFromFile(configDirPath, "test.json", nil, &testConfig{Name: "dflt"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.Name != "already-here" {
			t.Errorf("expected existing config to win, got: %+v", got)
		}
	})

	t.Run("runs migration callback", func(t *testing.T) {
		configDirPath := t.TempDir()
		migrationCalled := false
		migrationCb := func(string) error {
			migrationCalled = true
			return nil
		}
		_, err := LoadConfigFromFile(configDirPath, "test.json", migrationCb, &testConfig{})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !migrationCalled {
			t.Error("Expected migration callback to be called")
		}
	})
}
