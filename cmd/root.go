package cmd

import (
	logger "github.com/sightkey/sightkey/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// RootCmd is the sightkey root command.
var RootCmd = &cobra.Command{
	Use:   "sightkey",
	Short: "Sightkey - derive deterministic passwords from visual memories.",
	Long: `Sightkey derives a strong password from things you can remember by sight:
a website, your username there, a color you chose, a pattern you drew, and
optionally a place on a map.

Nothing is ever stored. The same inputs always regenerate the same
password, and different sites produce unrelated passwords even from the
same color and pattern.

Usage:
  sightkey <command> [flags]

Available Commands:
  derive     Derive a password from your visual inputs
  validate   Check visual inputs without deriving anything
  doctor     Run environment health checks
  config     Manage preferences
  history    List past derivations (non-secret metadata only)

Run 'sightkey help <command>' for more details on a specific command.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing sightkey with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(deriveCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(doctorCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(historyCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetDeriveCommandState()
	resetValidateCommandState()
	resetDoctorCommandState()
	resetHistoryCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
