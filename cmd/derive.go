package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sightkey/sightkey/internal/configs"
	"github.com/sightkey/sightkey/internal/derive"
	kerrors "github.com/sightkey/sightkey/internal/errors"
	"github.com/sightkey/sightkey/internal/ui"
	"github.com/sightkey/sightkey/internal/utils"
	"github.com/sightkey/sightkey/internal/workflows"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	deriveFlags   inputFlags
	deriveLength  int
	deriveMask    bool
	deriveNoInput bool
	// deriveExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	deriveExitFunc = os.Exit
)

func init() {
	deriveFlags.register(deriveCmd.Flags())
	deriveCmd.Flags().IntVarP(&deriveLength, "length", "l", 0, "password length, 12 to 256 (default from config)")
	deriveCmd.Flags().BoolVar(&deriveMask, "mask", false, "hide color and pattern while typing and in the echo")
	deriveCmd.Flags().BoolVar(&deriveNoInput, "no-input", false, "fail instead of prompting for missing fields")
}

// resetDeriveCommandState resets the derive command's global state for testing.
func resetDeriveCommandState() {
	deriveFlags.reset()
	deriveLength = 0
	deriveMask = false
	deriveNoInput = false
	deriveExitFunc = os.Exit
}

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive a password from your visual inputs",
	Long: `Derives a deterministic password from your visual inputs: the site's
domain, your username there, a chosen color, a drawn pattern, and an
optional location.

Missing fields are collected interactively with per-field validation.
Use --mask to hide the color and pattern while typing.

The password is never stored anywhere. Re-running with identical inputs
always reproduces the identical password.

Exit codes:
  0 - Password derived
  1 - Invalid input or a user-correctable failure`,
	RunE: runDerive,
}

func runDerive(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting derive command")

	config, err := configs.LoadUserConfig()
	if err != nil {
		return Logger.ErrorfAndReturn("failed to load user config: %v", err)
	}
	mask := deriveMask || config.Defaults.MaskInput

	input, parseIssues := deriveFlags.toVisualInput()
	if len(parseIssues) > 0 {
		fmt.Println(renderIssues(parseIssues))
		deriveExitFunc(1)
		return nil
	}

	if !deriveNoInput && utils.IsTerminal() {
		if err := promptMissingFields(&input, mask); err != nil {
			return Logger.ErrorfAndReturn("failed to collect input: %v", err)
		}
	}

	spinner, cleanup := startSpinner("Deriving password...", verbose)
	defer cleanup()

	progress := func(fraction float64, status string) {
		spinner.Suffix = fmt.Sprintf(" %s (%d%%)", status, int(fraction*100))
		Logger.Debugf("Pipeline progress %.2f: %s", fraction, status)
	}

	result, err := workflows.Derive(workflows.DeriveOptions{
		Input:    input,
		Length:   deriveLength,
		Progress: progress,
	})
	if err != nil {
		if msg, userError := renderDeriveError(err); userError {
			spinner.FinalMSG = msg
			cleanup()
			deriveExitFunc(1)
			return nil
		}
		return Logger.ErrorfAndReturn("derivation failed: %v", err)
	}

	Logger.Infof("Derive command completed successfully for %s at %s", input.Username, input.Domain)
	spinner.FinalMSG = ui.Success.Sprint("✓") + " Password derived for " +
		ui.Highlight.Sprint(input.Username) + " at " + ui.Highlight.Sprint(input.Domain) + "\n\n" +
		"  " + ui.Password.Sprint(result.Password) + "\n\n" +
		echoInputs(input, result.Length, mask)
	return nil
}

// promptMissingFields interactively collects any field not provided via
// flags, re-prompting on invalid values. Color and pattern entry honor the
// masking preference.
func promptMissingFields(input *derive.VisualInput, mask bool) error {
	if input.Domain == "" || input.Username == "" || input.Color == "" || len(input.Pattern) == 0 {
		banner := figure.NewColorFigure("sightkey", "alligator2", "cyan", true)
		banner.Print()
		fmt.Println()
	}

	if input.Domain == "" {
		value, err := promptUntilValid("Domain (e.g. github.com): ", false, func(s string) []string {
			return probeIssues(func(p *derive.VisualInput) { p.Domain = s })
		})
		if err != nil {
			return err
		}
		input.Domain = value
	}

	if input.Username == "" {
		value, err := promptUntilValid("Username: ", false, func(s string) []string {
			return probeIssues(func(p *derive.VisualInput) { p.Username = s })
		})
		if err != nil {
			return err
		}
		input.Username = value
	}

	if input.Color == "" {
		value, err := promptUntilValid("Color (hex, e.g. #FF5733): ", mask, func(s string) []string {
			return probeIssues(func(p *derive.VisualInput) { p.Color = s })
		})
		if err != nil {
			return err
		}
		input.Color = value
	}

	if len(input.Pattern) == 0 {
		value, err := promptUntilValid("Pattern points (e.g. 15,23,41,10,39): ", mask, func(s string) []string {
			points, err := utils.ParsePattern(s)
			if err != nil {
				return []string{err.Error()}
			}
			return probeIssues(func(p *derive.VisualInput) { p.Pattern = points })
		})
		if err != nil {
			return err
		}
		// Re-parse is safe: the value just passed validation.
		input.Pattern, _ = utils.ParsePattern(value)
	}

	if input.Coordinates == nil {
		value, err := promptUntilValid("Location as latitude,longitude (optional, Enter to skip): ", false, func(s string) []string {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			lat, lon, err := utils.ParseCoordinates(s)
			if err != nil {
				return []string{err.Error()}
			}
			return probeIssues(func(p *derive.VisualInput) {
				p.Coordinates = &derive.Coordinates{Latitude: lat, Longitude: lon}
			})
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(value) != "" {
			lat, lon, _ := utils.ParseCoordinates(value)
			input.Coordinates = &derive.Coordinates{Latitude: lat, Longitude: lon}
		}
	}

	return nil
}

// promptUntilValid reads a value until the validator returns no issues.
func promptUntilValid(prompt string, masked bool, validate func(string) []string) (string, error) {
	for {
		var value string
		var err error
		if masked {
			value, err = utils.ReadMasked(prompt)
		} else {
			value, err = utils.ReadLine(prompt)
		}
		if err != nil {
			return "", err
		}

		issues := validate(value)
		if len(issues) == 0 {
			return value, nil
		}
		for _, issue := range issues {
			fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗ ")+issue)
		}
	}
}

// probeIssues isolates one field's validation messages by applying the
// field to an otherwise valid input and running the full validator.
func probeIssues(apply func(*derive.VisualInput)) []string {
	probe := derive.VisualInput{
		Domain:   "example.com",
		Username: "someone",
		Color:    "#000000",
		Pattern:  []int{1, 2, 3, 4},
	}
	apply(&probe)
	return derive.ValidateInput(probe)
}

// echoInputs renders the non-secret echo of the inputs used. With masking
// enabled the color and pattern are replaced by bullets of the same length.
func echoInputs(input derive.VisualInput, length int, mask bool) string {
	patternText := patternString(input.Pattern)
	colorText := input.Color
	if mask {
		colorText = ui.Mask(colorText)
		patternText = ui.Mask(patternText)
	}

	location := "none"
	if input.Coordinates != nil {
		location = fmt.Sprintf("%g,%g", input.Coordinates.Latitude, input.Coordinates.Longitude)
	}

	return "  domain:    " + ui.Highlight.Sprint(input.Domain) + "\n" +
		"  username:  " + ui.Highlight.Sprint(input.Username) + "\n" +
		"  color:     " + colorText + "\n" +
		"  pattern:   " + patternText + "\n" +
		"  location:  " + ui.Muted.Sprint(location) + "\n" +
		"  length:    " + strconv.Itoa(length)
}

func patternString(pattern []int) string {
	parts := make([]string, len(pattern))
	for i, p := range pattern {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// renderIssues formats an aggregated issue list for terminal output.
func renderIssues(issues []string) string {
	lines := []string{ui.Error.Sprint("✗") + " Input validation failed:"}
	for _, issue := range issues {
		lines = append(lines, "  "+ui.Info.Sprint("→")+" "+issue)
	}
	return strings.Join(lines, "\n")
}

// renderDeriveError translates a pipeline error into a user-facing final
// message. The second return reports whether the error was user-correctable
// (and therefore fully handled by the message).
func renderDeriveError(err error) (string, bool) {
	var validationErr *kerrors.ValidationError
	if errors.As(err, &validationErr) {
		return renderIssues(validationErr.Issues), true
	}

	if errors.Is(err, kerrors.ErrLengthOutOfRange) {
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Pick a length between " +
			strconv.Itoa(derive.MinLength) + " and " + strconv.Itoa(derive.MaxLength), true
	}

	if errors.Is(err, kerrors.ErrComplexityUnsatisfiable) {
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " These exact inputs cannot satisfy the complexity rules; try a different length", true
	}

	if errors.Is(err, kerrors.ErrEnvironmentUnsupported) {
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("sightkey doctor") + " for details", true
	}

	var cryptoErr *kerrors.CryptoError
	if errors.As(err, &cryptoErr) {
		switch cryptoErr.Category {
		case kerrors.CryptoResource:
			return ui.Error.Sprint("✗") + " Not enough memory for the memory-hard stretch\n" +
				ui.Info.Sprint("→") + " Close other applications and retry", true
		case kerrors.CryptoUnsupported:
			return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("sightkey doctor") + " for details", true
		}
	}

	return "", false
}
