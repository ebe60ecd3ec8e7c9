package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/abdul-hamid-achik/httpie/packages/http"
)

// Exit codes for the httpie CLI
const (
	// ExitSuccess indicates a response was received and printed,
	// whatever its HTTP status
	ExitSuccess = 0

	// ExitFailure indicates an error not covered below
	ExitFailure = 1

	// ExitParseError indicates an invalid URL or key=value argument
	ExitParseError = 2

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// usageError marks syntax-level problems cobra reports with usage text
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var transportErr *http.TransportError
	var usageErr *usageError
	switch {
	case errors.Is(err, parser.ErrInvalidURL), errors.Is(err, parser.ErrInvalidKeyValue):
		return ExitParseError
	case errors.As(err, &transportErr):
		return ExitNetworkError
	case errors.As(err, &usageErr), errors.Is(err, parser.ErrUsage):
		return ExitUsageError
	default:
		return ExitFailure
	}
}
