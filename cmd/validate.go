package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sightkey/sightkey/internal/derive"
	"github.com/sightkey/sightkey/internal/ui"

	"github.com/spf13/cobra"
)

var (
	validateFlags      inputFlags
	validateLengthFlag int
	// validateExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	validateExitFunc = os.Exit
)

func init() {
	validateFlags.register(validateCmd.Flags())
	validateCmd.Flags().IntVarP(&validateLengthFlag, "length", "l", 0, "also check a requested password length")
}

func resetValidateCommandState() {
	validateFlags.reset()
	validateLengthFlag = 0
	validateExitFunc = os.Exit
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check visual inputs without deriving anything",
	Long: `Validates visual inputs against the same rules the derive command uses,
without touching any key material. All violations are reported together,
not just the first.

Exit codes:
  0 - Inputs are valid
  1 - One or more violations found`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting validate command")

	input, issues := validateFlags.toVisualInput()
	issues = append(issues, derive.ValidateInput(input)...)

	if validateLengthFlag != 0 && (validateLengthFlag < derive.MinLength || validateLengthFlag > derive.MaxLength) {
		issues = append(issues, "length must be between "+
			strconv.Itoa(derive.MinLength)+" and "+strconv.Itoa(derive.MaxLength))
	}

	if len(issues) > 0 {
		Logger.Debugf("Validation found %d issues", len(issues))
		fmt.Println(renderIssues(issues))
		validateExitFunc(1)
		return nil
	}

	fmt.Println(ui.Success.Sprint("✓") + " Inputs are valid")
	return nil
}
