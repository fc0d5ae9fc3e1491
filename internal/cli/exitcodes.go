package cli

import (
	"errors"

	"github.com/thenoetrevino/obra/internal/database"
	projectservice "github.com/thenoetrevino/obra/internal/services/project"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unexpected failures that don't fit the categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or a malformed ID argument.
	ExitUsage = 2

	// ExitNotFound indicates a requested project was not found.
	ExitNotFound = 3

	// ExitDataErr indicates the store failed.
	// Use for: any error wrapping database.ErrDataAccess.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: difficulty outside 1-5, negative hours or costs, empty names.
	ExitValidation = 5
)

// ExitErr carries the process exit code a command failed with.
// main unwraps it with ExitCode.
type ExitErr struct {
	Code int
	Err  error
}

func (e *ExitErr) Error() string {
	return e.Err.Error()
}

func (e *ExitErr) Unwrap() error {
	return e.Err
}

// WithExitCode attaches code to err
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitErr{Code: code, Err: err}
}

// ExitCode maps a command error to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitErr
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, projectservice.ErrProjectNotFound):
		return ExitNotFound
	case errors.Is(err, database.ErrDataAccess):
		return ExitDataErr
	default:
		return ExitError
	}
}
