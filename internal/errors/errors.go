package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Environment errors indicate the runtime lacks a required cryptographic capability.
var (
	// ErrEnvironmentUnsupported indicates a required cryptographic primitive is unavailable.
	ErrEnvironmentUnsupported = errors.New("environment does not support required cryptographic primitives")
)

// Request errors indicate the caller asked for something outside the supported range.
var (
	// ErrLengthOutOfRange indicates the requested password length is outside [12, 256].
	ErrLengthOutOfRange = errors.New("requested password length is out of range")

	// ErrComplexityUnsatisfiable indicates the retry budget was exhausted without a
	// candidate password satisfying the complexity rules.
	ErrComplexityUnsatisfiable = errors.New("complexity requirements not satisfiable")

	// ErrUnsupportedInputKind indicates a value of an unsupported kind reached the
	// byte encoder. Encoding never silently coerces.
	ErrUnsupportedInputKind = errors.New("unsupported input kind")
)

// ValidationError aggregates every field-level violation found in a VisualInput.
// All violations are collected before the error is returned, not just the first.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("input validation failed: %s", strings.Join(e.Issues, "; "))
}

// NewValidationError wraps a non-empty issue list.
func NewValidationError(issues []string) *ValidationError {
	return &ValidationError{Issues: issues}
}

// CryptoCategory classifies a failed cryptographic operation so it can be
// translated into a user-actionable message.
type CryptoCategory int

const (
	// CryptoOperation is a generic operational failure of a primitive.
	CryptoOperation CryptoCategory = iota
	// CryptoResource is memory or resource exhaustion, typically during the
	// memory-hard stretch.
	CryptoResource
	// CryptoUnsupported is a platform-support failure.
	CryptoUnsupported
)

// String returns a string representation of CryptoCategory.
func (c CryptoCategory) String() string {
	switch c {
	case CryptoOperation:
		return "operation"
	case CryptoResource:
		return "resource"
	case CryptoUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// CryptoError wraps a failure of an underlying cryptographic primitive with a
// category the CLI uses to choose a remediation hint.
type CryptoError struct {
	Category CryptoCategory
	Err      error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("cryptographic operation failed (%s): %v", e.Category, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError wraps err with the given category.
func NewCryptoError(category CryptoCategory, err error) *CryptoError {
	return &CryptoError{Category: category, Err: err}
}
