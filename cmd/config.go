package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sightkey preferences",
	Long: `Manages non-secret preferences: default password length, masked entry,
and history logging. Preferences never influence the derived password for
a given set of inputs and length.`,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
