package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sightkey/sightkey/internal/ui"
	"github.com/sightkey/sightkey/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	doctorJSONOutput bool
	// doctorExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	doctorExitFunc = os.Exit
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSONOutput, "json", false, "output in JSON format")
}

func resetDoctorCommandState() {
	doctorJSONOutput = false
	doctorExitFunc = os.Exit
}

// SetDoctorExitFunc sets the exit function for testing purposes.
func SetDoctorExitFunc(f func(int)) {
	doctorExitFunc = f
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run environment health checks",
	Long: `Runs a series of health checks on the environment and reports issues.

The doctor command checks:
  - SHA-256 digest self-test
  - HKDF key derivation self-test
  - Argon2id memory-hard hashing self-test
  - Config directory writability
  - History log integrity
  - Terminal availability for interactive input

Exit codes:
  0 - All checks passed
  1 - Warnings found (non-critical issues)
  2 - Errors found (critical issues)

Use --json for machine-readable output.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting doctor command")

	spinner, cleanup := startSpinner("Running health checks...", verbose)
	defer cleanup()

	result, err := workflows.Doctor(context.Background(), workflows.DoctorOptions{})
	if err != nil {
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to run health checks: " + err.Error()
		return err
	}

	for _, check := range result.Checks {
		Logger.Debugf("Check %s: status=%s, message=%s", check.Name, check.Status.String(), check.Message)
	}

	// Output results.
	if doctorJSONOutput {
		spinner.FinalMSG = ""
		if err := outputDoctorJSON(result); err != nil {
			return err
		}
	} else {
		spinner.FinalMSG = ""
		printDoctorResults(result)
		if result.Summary.Errors > 0 {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Health checks completed with errors"
		} else if result.Summary.Warnings > 0 {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " Health checks completed with warnings"
		} else {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Health checks completed"
		}
	}

	// Exit with the appropriate code.
	if result.Summary.Errors > 0 {
		cleanup()
		doctorExitFunc(2)
	} else if result.Summary.Warnings > 0 {
		cleanup()
		doctorExitFunc(1)
	}

	return nil
}

func printDoctorResults(result *workflows.DoctorResult) {
	for _, check := range result.Checks {
		var icon string
		switch check.Status {
		case workflows.CheckPass:
			icon = ui.Success.Sprint("✓")
		case workflows.CheckWarning:
			icon = ui.Warning.Sprint("⚠")
		case workflows.CheckError:
			icon = ui.Error.Sprint("✗")
		}
		fmt.Printf("%s %s: %s\n", icon, check.Name, check.Message)
		if check.Suggestion != "" {
			fmt.Printf("  %s %s\n", ui.Info.Sprint("→"), check.Suggestion)
		}
	}
	fmt.Printf("\n%d passed, %d warnings, %d errors\n",
		result.Summary.Passed, result.Summary.Warnings, result.Summary.Errors)
}

func outputDoctorJSON(result *workflows.DoctorResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
