package workflows

import (
	"github.com/sightkey/sightkey/internal/configs"
	"github.com/sightkey/sightkey/internal/derive"
	"github.com/sightkey/sightkey/internal/history"
)

// DeriveOptions configures the derive workflow.
type DeriveOptions struct {
	Input derive.VisualInput

	// Length is the requested password length. Zero means the user's
	// configured default.
	Length int

	// Progress, if non-nil, receives pipeline milestones.
	Progress derive.Progress
}

// DeriveResult holds the outcome of the derive workflow.
type DeriveResult struct {
	Password     string
	Length       int
	UsedLocation bool
}

// Derive runs the derivation pipeline with the user's configured defaults
// and, when enabled, records a non-secret history entry. The entry carries
// only domain, username, length, and whether a location contributed.
func Derive(opts DeriveOptions) (*DeriveResult, error) {
	config, err := configs.EnsureUserConfig()
	if err != nil {
		return nil, err
	}

	length := opts.Length
	if length == 0 {
		length = config.Defaults.Length
	}

	password, err := derive.Derive(opts.Input, derive.Options{
		Length:   length,
		Progress: opts.Progress,
	})
	if err != nil {
		return nil, err
	}

	if config.Defaults.HistoryEnabled {
		history.Log(history.Entry{
			Install:  config.User.UUID,
			Domain:   opts.Input.Domain,
			Username: opts.Input.Username,
			Length:   length,
			Location: opts.Input.Coordinates != nil,
		})
	}

	return &DeriveResult{
		Password:     password,
		Length:       length,
		UsedLocation: opts.Input.Coordinates != nil,
	}, nil
}
