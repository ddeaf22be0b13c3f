// Package errors defines hashfn's error taxonomy and its exit code mapping.
package errors

import (
	sterrors "errors"
	"fmt"
)

var (
	// ErrUsage indicates a command line that cannot be acted on.
	ErrUsage = sterrors.New("usage error")
	// ErrInput indicates that the input could not be opened.
	ErrInput = sterrors.New("input unavailable")
)

// HashError records which algorithm was running when a read fault ended the computation.
type HashError struct {
	Algorithm string
	Err       error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("%s: %v", e.Algorithm, e.Err)
}

func (e *HashError) Unwrap() error {
	return e.Err
}

// Usagef returns an ErrUsage carrying a formatted reason.
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if sterrors.Is(err, ErrUsage) {
		return 2
	}

	return 1
}
