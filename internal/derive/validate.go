package derive

import (
	"fmt"
	"regexp"
	"strings"

	kerrors "github.com/sightkey/sightkey/internal/errors"
)

// colorPattern matches a 3- or 6-digit hex color, with or without a leading #.
var colorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateInput checks every field of a VisualInput and returns the full
// list of human-readable violations. Checks do not short-circuit: multiple
// simultaneous violations all appear together. An empty list means the
// input is valid.
func ValidateInput(input VisualInput) []string {
	var issues []string

	if len(input.Domain) < 3 {
		issues = append(issues, "domain must be at least 3 characters")
	}
	if !strings.Contains(input.Domain, ".") {
		issues = append(issues, "domain must contain a top-level label separator (e.g. example.com)")
	}
	if len(input.Username) < 2 {
		issues = append(issues, "username must be at least 2 characters")
	}
	if !colorPattern.MatchString(input.Color) {
		issues = append(issues, "color must be a 3- or 6-digit hex value (e.g. #FF5733)")
	}
	if len(input.Pattern) < 4 {
		issues = append(issues, "pattern must contain at least 4 points")
	}
	if input.Coordinates != nil {
		if input.Coordinates.Latitude < -90 || input.Coordinates.Latitude > 90 {
			issues = append(issues, "latitude must be between -90 and 90")
		}
		if input.Coordinates.Longitude < -180 || input.Coordinates.Longitude > 180 {
			issues = append(issues, "longitude must be between -180 and 180")
		}
	}

	return issues
}

// validateLength rejects a requested password length outside [MinLength, MaxLength].
func validateLength(length int) error {
	if length < MinLength || length > MaxLength {
		return fmt.Errorf("%w: %d (must be between %d and %d)",
			kerrors.ErrLengthOutOfRange, length, MinLength, MaxLength)
	}
	return nil
}
