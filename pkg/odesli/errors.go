package odesli

import (
	"errors"
	"fmt"
)

// UnknownEntityTypeError is returned when a value is neither "song" nor "album".
type UnknownEntityTypeError struct {
	Value string
}

func (e *UnknownEntityTypeError) Error() string {
	return fmt.Sprintf("unknown entity type: %q", e.Value)
}

// UnknownPlatformError is returned for a platform wire token that is not modeled.
type UnknownPlatformError struct {
	Value string
}

func (e *UnknownPlatformError) Error() string {
	return fmt.Sprintf("unknown platform: %q", e.Value)
}

// UnknownAPIProviderError is returned for an API provider wire token that is not modeled.
type UnknownAPIProviderError struct {
	Value string
}

func (e *UnknownAPIProviderError) Error() string {
	return fmt.Sprintf("unknown API provider: %q", e.Value)
}

// ParseError is returned when a successful response body cannot be decoded.
// Body holds the raw response and is left out of Error().
type ParseError struct {
	Err  error
	Body string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse Odesli response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StatusError is returned when Odesli answers with a non-2xx status code.
// Body holds the raw response and is left out of Error().
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Odesli returned non-success status %d", e.StatusCode)
}

// TransportError wraps failures to send the request or read the response,
// including context cancellation and deadlines.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to make HTTP request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RawBody returns the response body captured by a ParseError or StatusError
// anywhere in err's chain.
func RawBody(err error) (string, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Body, true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Body, true
	}
	return "", false
}
