package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/sightkey/sightkey/internal/configs"
	"github.com/sightkey/sightkey/internal/ui"

	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		config, err := configs.EnsureUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load user config: %v", err)
		}

		configPath := filepath.Join(configs.UserSightkeySettings.UserConfigsPath, "config.toml")

		fmt.Println("Preferences " + ui.Muted.Sprint(configPath))
		fmt.Printf("  length:   %d\n", config.Defaults.Length)
		fmt.Printf("  mask:     %t\n", config.Defaults.MaskInput)
		fmt.Printf("  history:  %t\n", config.Defaults.HistoryEnabled)
		fmt.Println("  install:  " + ui.Muted.Sprint(config.User.UUID))
		return nil
	},
}
