package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sightkey/sightkey/internal/configs"
	"github.com/sightkey/sightkey/internal/derive"
	"github.com/sightkey/sightkey/internal/history"
	"github.com/sightkey/sightkey/internal/utils"
)

// CheckStatus represents the result status of a health check.
type CheckStatus int

const (
	// CheckPass means the check passed.
	CheckPass CheckStatus = iota
	// CheckWarning means the check found a non-critical issue.
	CheckWarning
	// CheckError means the check found a critical issue.
	CheckError
)

// String returns a string representation of CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarning:
		return "warning"
	case CheckError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for CheckStatus.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckResult holds the result of a single health check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// DoctorResult holds the complete result of the doctor workflow.
type DoctorResult struct {
	Checks  []CheckResult `json:"checks"`
	Summary DoctorSummary `json:"summary"`
}

// DoctorSummary holds counts of checks by status.
type DoctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// DoctorOptions configures the doctor workflow.
type DoctorOptions struct {
	// No options currently, but provides extensibility.
}

// Doctor runs sightkey's environment health checks.
//
// The doctor workflow checks:
//   - Each required cryptographic primitive (digest, HKDF, Argon2id)
//     against its self-test vector
//   - User config directory writability
//   - History log integrity
//   - Terminal availability for interactive input
func Doctor(ctx context.Context, opts DoctorOptions) (*DoctorResult, error) {
	result := &DoctorResult{}

	for _, capability := range derive.Capabilities() {
		check := CheckResult{Name: capability.Name, Status: CheckPass, Message: "self-test passed"}
		if capability.Err != nil {
			check.Status = CheckError
			check.Message = capability.Err.Error()
			check.Suggestion = "This build of sightkey cannot derive passwords on this platform"
		}
		result.Checks = append(result.Checks, check)
	}

	result.Checks = append(result.Checks, checkConfigDir())
	result.Checks = append(result.Checks, checkHistoryLog())
	result.Checks = append(result.Checks, checkTerminal())

	for _, check := range result.Checks {
		switch check.Status {
		case CheckPass:
			result.Summary.Passed++
		case CheckWarning:
			result.Summary.Warnings++
		case CheckError:
			result.Summary.Errors++
		}
	}

	return result, nil
}

func checkConfigDir() CheckResult {
	check := CheckResult{Name: "Config directory", Status: CheckPass}

	dir := configs.UserSightkeySettings.UserConfigsPath
	if err := os.MkdirAll(dir, 0700); err != nil {
		check.Status = CheckError
		check.Message = fmt.Sprintf("cannot create %s: %v", dir, err)
		check.Suggestion = "Check permissions on your user config directory"
		return check
	}

	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		check.Status = CheckError
		check.Message = fmt.Sprintf("%s is not writable: %v", dir, err)
		check.Suggestion = "Check permissions on your user config directory"
		return check
	}
	probe.Close()
	os.Remove(probe.Name())

	check.Message = dir
	return check
}

func checkHistoryLog() CheckResult {
	check := CheckResult{Name: "History log", Status: CheckPass}

	logPath := history.LogPath()
	if logPath == "" {
		check.Message = "not configured"
		return check
	}

	entries, err := history.ReadEntries()
	if err != nil {
		check.Status = CheckWarning
		check.Message = fmt.Sprintf("cannot read %s: %v", logPath, err)
		check.Suggestion = "Delete the history log to reset it; it holds no secrets"
		return check
	}

	check.Message = fmt.Sprintf("%d entries", len(entries))
	return check
}

func checkTerminal() CheckResult {
	check := CheckResult{Name: "Interactive terminal", Status: CheckPass, Message: "stdin is a terminal"}

	if !utils.IsTerminal() {
		check.Status = CheckWarning
		check.Message = "stdin is not a terminal"
		check.Suggestion = "Interactive prompting and masked entry need a terminal; flags still work"
	}

	return check
}
