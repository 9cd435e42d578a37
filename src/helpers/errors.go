package helpers

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type ViewerError struct {
	Message string
	Cause   error
}

func (e *ViewerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ViewerError) Unwrap() error {
	return e.Cause
}

// NetworkError: the data source could not be reached or answered with a failure status.
type NetworkError struct{ ViewerError }

// ParseError: the response body is not the expected structured data.
type ParseError struct{ ViewerError }

// EmptyDataError: the body parsed but one or more category arrays are missing.
type EmptyDataError struct {
	ViewerError
	Missing []string
}

// -----------------------------------------------------------------------------

func NewNetworkError(message string, cause error) error {
	return &NetworkError{ViewerError{Message: message, Cause: cause}}
}

func NewParseError(message string, cause error) error {
	return &ParseError{ViewerError{Message: message, Cause: cause}}
}

func NewEmptyDataError(missing []string) error {
	return &EmptyDataError{
		ViewerError: ViewerError{Message: fmt.Sprintf("response is missing %v", missing)},
		Missing:     missing,
	}
}

// -----------------------------------------------------------------------------

// ErrorKind names the failure class for logging.
func ErrorKind(err error) string {
	var (
		netErr   *NetworkError
		parseErr *ParseError
		emptyErr *EmptyDataError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &netErr):
		return "network"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &emptyErr):
		return "empty_data"
	}
	return "unknown"
}
