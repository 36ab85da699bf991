package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sightkey/sightkey/internal/derive"
)

type UserConfig struct {
	User     User     `toml:"user"`
	Defaults Defaults `toml:"defaults"`
}

type User struct {
	// UUID anonymously identifies this install in history entries. It never
	// feeds into derivation.
	UUID string `toml:"install_uuid"`
}

type Defaults struct {
	Length         int  `toml:"length"`
	MaskInput      bool `toml:"mask_input"`
	HistoryEnabled bool `toml:"history_enabled"`
}

// LoadUserConfig loads the user configuration from the config file.
// A missing file yields a config populated with defaults.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserSightkeySettings.UserConfigsPath, "config.toml")

	config := &UserConfig{
		Defaults: Defaults{
			Length:         derive.DefaultLength,
			MaskInput:      false,
			HistoryEnabled: true,
		},
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if config.Defaults.Length == 0 {
		config.Defaults.Length = derive.DefaultLength
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserSightkeySettings.UserConfigsPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// EnsureUserConfig ensures the user configuration exists and has an install UUID.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	if config.User.UUID == "" {
		config.User.UUID = uuid.New().String()
		if err := SaveUserConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}
