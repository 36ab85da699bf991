package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/sightkey/sightkey/internal/derive"
	kerrors "github.com/sightkey/sightkey/internal/errors"
)

func TestInputFlags_ToVisualInput(t *testing.T) {
	f := inputFlags{
		domain:      "github.com",
		username:    "alice.dev",
		color:       "#FF5733",
		pattern:     "15,23,41,10,39",
		coordinates: "-36.85,174.76",
	}

	input, issues := f.toVisualInput()
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}

	if input.Domain != "github.com" || input.Username != "alice.dev" || input.Color != "#FF5733" {
		t.Errorf("unexpected text fields: %+v", input)
	}
	want := []int{15, 23, 41, 10, 39}
	if len(input.Pattern) != len(want) {
		t.Fatalf("pattern = %v, want %v", input.Pattern, want)
	}
	for i := range want {
		if input.Pattern[i] != want[i] {
			t.Errorf("pattern = %v, want %v", input.Pattern, want)
		}
	}
	if input.Coordinates == nil {
		t.Fatal("expected coordinates")
	}
	if input.Coordinates.Latitude != -36.85 || input.Coordinates.Longitude != 174.76 {
		t.Errorf("coordinates = %+v", input.Coordinates)
	}
}

func TestInputFlags_ToVisualInput_EmptyOptionalFields(t *testing.T) {
	f := inputFlags{domain: "github.com", username: "alice.dev", color: "#FF5733"}

	input, issues := f.toVisualInput()
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if input.Pattern != nil {
		t.Errorf("expected nil pattern, got %v", input.Pattern)
	}
	if input.Coordinates != nil {
		t.Errorf("expected nil coordinates, got %+v", input.Coordinates)
	}
}

func TestInputFlags_ToVisualInput_ParseIssues(t *testing.T) {
	f := inputFlags{
		domain:      "github.com",
		username:    "alice.dev",
		color:       "#FF5733",
		pattern:     "15,twenty,41",
		coordinates: "not-a-location",
	}

	_, issues := f.toVisualInput()
	if len(issues) != 2 {
		t.Fatalf("expected 2 parse issues, got %v", issues)
	}
	if !strings.Contains(issues[0], "pattern") {
		t.Errorf("first issue should mention the pattern: %q", issues[0])
	}
	if !strings.Contains(issues[1], "coordinates") {
		t.Errorf("second issue should mention the coordinates: %q", issues[1])
	}
}

func TestInputFlags_Reset(t *testing.T) {
	f := inputFlags{domain: "github.com", pattern: "1,2,3,4"}
	f.reset()
	if f != (inputFlags{}) {
		t.Errorf("reset left state behind: %+v", f)
	}
}

func TestRenderDeriveError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantUserError bool
		wantIn        string
	}{
		{
			"validation issues",
			kerrors.NewValidationError([]string{"color must be a 3- or 6-digit hex value (e.g. #FF5733)"}),
			true,
			"color",
		},
		{
			"length out of range",
			kerrors.ErrLengthOutOfRange,
			true,
			"length between 12 and 256",
		},
		{
			"complexity unsatisfiable",
			kerrors.ErrComplexityUnsatisfiable,
			true,
			"different length",
		},
		{
			"environment unsupported",
			kerrors.ErrEnvironmentUnsupported,
			true,
			"sightkey doctor",
		},
		{
			"resource exhaustion",
			kerrors.NewCryptoError(kerrors.CryptoResource, errors.New("out of memory")),
			true,
			"memory",
		},
		{
			"platform unsupported",
			kerrors.NewCryptoError(kerrors.CryptoUnsupported, errors.New("primitive unavailable")),
			true,
			"sightkey doctor",
		},
		{
			"internal operation failure",
			kerrors.NewCryptoError(kerrors.CryptoOperation, errors.New("short read")),
			false,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, userError := renderDeriveError(tt.err)
			if userError != tt.wantUserError {
				t.Fatalf("userError = %v, want %v", userError, tt.wantUserError)
			}
			if tt.wantIn != "" && !strings.Contains(msg, tt.wantIn) {
				t.Errorf("message %q does not mention %q", msg, tt.wantIn)
			}
		})
	}
}

func TestEchoInputs_Masking(t *testing.T) {
	input := derive.VisualInput{
		Domain:   "github.com",
		Username: "alice.dev",
		Color:    "#FF5733",
		Pattern:  []int{15, 23, 41, 10, 39},
	}

	plain := echoInputs(input, 24, false)
	if !strings.Contains(plain, "#FF5733") || !strings.Contains(plain, "15,23,41,10,39") {
		t.Errorf("unmasked echo should show color and pattern:\n%s", plain)
	}
	if !strings.Contains(plain, "none") {
		t.Errorf("echo without coordinates should say none:\n%s", plain)
	}

	masked := echoInputs(input, 24, true)
	if strings.Contains(masked, "#FF5733") || strings.Contains(masked, "15,23,41,10,39") {
		t.Errorf("masked echo must not show color or pattern:\n%s", masked)
	}

	withLocation := input
	withLocation.Coordinates = &derive.Coordinates{Latitude: -36.85, Longitude: 174.76}
	echoed := echoInputs(withLocation, 24, false)
	if !strings.Contains(echoed, "-36.85,174.76") {
		t.Errorf("echo should show the location:\n%s", echoed)
	}
}

func TestRunDerive_ParseFailureExitsNonZero(t *testing.T) {
	withTempSettings(t)

	deriveFlags = inputFlags{
		domain:   "github.com",
		username: "alice.dev",
		color:    "#FF5733",
		pattern:  "15,twenty,41",
	}
	deriveNoInput = true

	exitCode := -1
	deriveExitFunc = func(code int) { exitCode = code }

	if err := runDerive(deriveCmd, nil); err != nil {
		t.Fatalf("runDerive returned an error: %v", err)
	}
	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
}

func TestRunDerive_ValidationFailureExitsNonZero(t *testing.T) {
	withTempSettings(t)

	deriveFlags = inputFlags{
		domain:   "ab",
		username: "a",
		color:    "red",
		pattern:  "1,2,3,4",
	}
	deriveNoInput = true

	exitCode := -1
	deriveExitFunc = func(code int) { exitCode = code }

	if err := runDerive(deriveCmd, nil); err != nil {
		t.Fatalf("runDerive returned an error: %v", err)
	}
	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
}

func TestProbeIssues_IsolatesField(t *testing.T) {
	// A bad color on an otherwise valid probe reports only the color.
	issues := probeIssues(func(p *derive.VisualInput) { p.Color = "red" })
	if len(issues) != 1 || !strings.Contains(issues[0], "color") {
		t.Errorf("expected a single color issue, got %v", issues)
	}

	if issues := probeIssues(func(p *derive.VisualInput) {}); len(issues) != 0 {
		t.Errorf("valid probe should have no issues: %v", issues)
	}
}
