package tools

import (
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeConfluenceError = "CONFLUENCE_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeInvalidQuery    = "INVALID_QUERY"
	ErrCodeTimeout         = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapConfluenceError converts a client.APIError or other error to a coded
// error suitable for a tool response.
func WrapConfluenceError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError

	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.StatusCode == 404:
		coded = &CodedError{Code: ErrCodeNotFound, Message: apiErr.Message, Cause: err}
	case errors.As(err, &apiErr) && apiErr.StatusCode == 400:
		coded = &CodedError{Code: ErrCodeInvalidQuery, Message: err.Error(), Cause: err}
	case errors.As(err, &apiErr):
		coded = &CodedError{Code: ErrCodeConfluenceError, Message: apiErr.Message, Cause: err}
	case isTimeout(err):
		coded = &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	default:
		coded = &CodedError{Code: ErrCodeConfluenceError, Message: err.Error(), Cause: err}
	}

	slog.Warn("confluence API error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(err.Error(), "context deadline exceeded")
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
