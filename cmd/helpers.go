package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/sightkey/sightkey/internal/derive"
	"github.com/sightkey/sightkey/internal/ui"
	"github.com/sightkey/sightkey/internal/utils"

	"github.com/briandowns/spinner"
	"github.com/spf13/pflag"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
// This ensures consistent output formatting across all commands.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		Logger.Debugf("Starting spinner in non-verbose mode")
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			Logger.Debugf("Restoring log output")
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			Logger.Debugf("Stopping spinner")
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// inputFlags holds the visual-input flags shared by the derive and
// validate commands.
type inputFlags struct {
	domain      string
	username    string
	color       string
	pattern     string
	coordinates string
}

// register adds the shared visual-input flags to a flag set.
func (f *inputFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.domain, "domain", "", "site the password is for (e.g. github.com)")
	flags.StringVar(&f.username, "username", "", "username at the site")
	flags.StringVar(&f.color, "color", "", "chosen color as 3- or 6-digit hex (e.g. #FF5733)")
	flags.StringVar(&f.pattern, "pattern", "", "drawn pattern as comma-separated point numbers (e.g. 15,23,41,10,39)")
	flags.StringVar(&f.coordinates, "coordinates", "", "optional location as latitude,longitude")
}

// reset restores the zero state for testing.
func (f *inputFlags) reset() {
	*f = inputFlags{}
}

// toVisualInput converts the collected flag text into a VisualInput.
// Parse failures of the pattern or coordinates are reported as issues in
// the same style as the core validator, so callers can aggregate them.
func (f *inputFlags) toVisualInput() (derive.VisualInput, []string) {
	var issues []string

	input := derive.VisualInput{
		Domain:   f.domain,
		Username: f.username,
		Color:    f.color,
	}

	if f.pattern != "" {
		points, err := utils.ParsePattern(f.pattern)
		if err != nil {
			issues = append(issues, fmt.Sprintf("pattern is not a comma-separated list of numbers: %v", err))
		} else {
			input.Pattern = points
		}
	}

	if f.coordinates != "" {
		lat, lon, err := utils.ParseCoordinates(f.coordinates)
		if err != nil {
			issues = append(issues, fmt.Sprintf("coordinates are not a latitude,longitude pair: %v", err))
		} else {
			input.Coordinates = &derive.Coordinates{Latitude: lat, Longitude: lon}
		}
	}

	return input, issues
}
