package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup for a specific id has no match.
// Callers use errors.Is to render a dedicated "not found" state instead
// of a generic error state.
var ErrNotFound = errors.New("not found")

// ClientError is a type for errors that occur in the client package.
// It is a string that can be formatted with arguments. It avoids to
// repeat the error message formatted in the client code.
type ClientError string

const (
	ErrFailedToUnmarshalResponse ClientError = "failed to unmarshal response %s"
	ErrFailedToMarshalParams     ClientError = "failed to marshal params %s"
	ErrFailedToUnmarshalParams   ClientError = "failed to unmarshal params %s"

	ErrFailedToMakeRequest      ClientError = "failed to make request %s"
	ErrFailedToParseURL         ClientError = "failed to parse URL %s"
	ErrFailedToDoRequest        ClientError = "failed to do request %s"
	ErrFailedToReadResponseBody ClientError = "failed to read response body %s"
)

// WithArgs returns a new error with the given arguments.
func (e ClientError) WithArgs(args ...any) error {
	return fmt.Errorf(string(e), args...)
}
