package cmd

import (
	"errors"
	"fmt"

	"github.com/chris-regnier/moodmemo/internal/storage"
)

// exitError carries the process exit status for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

func usageErrorf(format string, args ...interface{}) error {
	return withCode(1, fmt.Errorf(format, args...))
}

func notFound(id string) error {
	return withCode(1, fmt.Errorf("entry %s: %w", id, storage.ErrNotFound))
}

// ExitCode maps an error returned by Execute to the process exit status:
// 1 for bad input or a missing entry, 2 for storage failures, 3 for editor
// failures.
func ExitCode(err error) int {
	var ee *exitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ee):
		return ee.code
	case errors.Is(err, storage.ErrStorage):
		return 2
	}
	return 1
}
