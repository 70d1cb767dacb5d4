package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/PanelCut/internal/model"
)

// ConfigPathEnv overrides the config file location when set.
const ConfigPathEnv = "PANELCUT_CONFIG"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.panelcut/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".panelcut")
}

// DefaultConfigPath returns the path of the application config file,
// honouring PANELCUT_CONFIG.
func DefaultConfigPath() string {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path
	}
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Fields missing from the file keep their default values.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentJobs == nil {
		config.RecentJobs = []string{}
	}
	if config.DefaultPanelWidth <= 0 {
		config.DefaultPanelWidth = model.DefaultPanelSpec().PanelWidth
	}
	return config, nil
}
