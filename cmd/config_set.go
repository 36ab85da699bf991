package cmd

import (
	"fmt"
	"strconv"

	"github.com/sightkey/sightkey/internal/configs"
	"github.com/sightkey/sightkey/internal/derive"
	"github.com/sightkey/sightkey/internal/ui"

	"github.com/spf13/cobra"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference",
	Long: `Sets a preference. Available keys:

  length    default password length (12-256)
  mask      hide color and pattern while typing (true/false)
  history   record non-secret derivation history (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set command")
		key, value := args[0], args[1]

		config, err := configs.EnsureUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load user config: %v", err)
		}

		switch key {
		case "length":
			length, err := strconv.Atoi(value)
			if err != nil || length < derive.MinLength || length > derive.MaxLength {
				fmt.Println(ui.Error.Sprint("✗") + " length must be a number between " +
					strconv.Itoa(derive.MinLength) + " and " + strconv.Itoa(derive.MaxLength))
				return nil
			}
			config.Defaults.Length = length
		case "mask":
			masked, err := strconv.ParseBool(value)
			if err != nil {
				fmt.Println(ui.Error.Sprint("✗") + " mask must be true or false")
				return nil
			}
			config.Defaults.MaskInput = masked
		case "history":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				fmt.Println(ui.Error.Sprint("✗") + " history must be true or false")
				return nil
			}
			config.Defaults.HistoryEnabled = enabled
		default:
			fmt.Println(ui.Error.Sprint("✗") + " Unknown key " + ui.Highlight.Sprint(key) + "\n" +
				ui.Info.Sprint("→") + " Available keys: " + ui.Code.Sprint("length") + ", " +
				ui.Code.Sprint("mask") + ", " + ui.Code.Sprint("history"))
			return nil
		}

		if err := configs.SaveUserConfig(config); err != nil {
			return Logger.ErrorfAndReturn("failed to save user config: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Set " + ui.Highlight.Sprint(key) + " to " + ui.Highlight.Sprint(value))
		return nil
	},
}
