package main

import (
	"errors"
	"fmt"

	"github.com/invertedv/housing"
	"github.com/invertedv/housing/config"
)

// exit codes
const (
	ExitData  = 1 // the data could not be processed
	ExitUsage = 2 // bad configuration, flags or choices
)

// ExitError is an error with the exit code of the process.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func wrapExit(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// exitCode maps err to an exit code. Errors the user can fix by changing the configuration or
// the choice of community and year are usage errors.
func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	for _, usage := range []error{config.ErrConfig, housing.ErrCommunity, housing.ErrYear, housing.ErrNoRecord} {
		if errors.Is(err, usage) {
			return ExitUsage
		}
	}

	return ExitData
}
