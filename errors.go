package silverdiamond

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the client itself, before or after the
// HTTP exchange. Errors raised by the service or by the network are
// typed (RemoteError, TransportError) and carry the endpoint name.
var (
	// ErrMissingAPIKey is returned by New when the API key is empty.
	ErrMissingAPIKey = errors.New("silverdiamond: api key is required")

	// ErrInvalidArgument is returned when a call argument is empty or
	// blank. No request is sent in that case.
	ErrInvalidArgument = errors.New("silverdiamond: invalid argument")

	// ErrUnexpectedResponse is returned when the service answered
	// without an error but the body lacks the fields the operation
	// needs, or a field has a shape that cannot be interpreted.
	ErrUnexpectedResponse = errors.New("silverdiamond: unexpected response from service")
)

// RemoteError is a failure reported by the Silver Diamond service in
// the response body. The service marks failures with a message or
// error field rather than with HTTP status codes.
type RemoteError struct {
	Endpoint string // endpoint path segment, e.g. "language-detection"
	Message  string // service-provided text, may be empty
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("silverdiamond: %s: service reported an error", e.Endpoint)
	}
	return fmt.Sprintf("silverdiamond: %s: %s", e.Endpoint, e.Message)
}

// TransportError is a failure to complete the HTTP exchange: the
// request could not be sent, the connection broke, the context was
// canceled, or the body was not JSON.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("silverdiamond: %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsRemoteError reports whether err is (or wraps) a RemoteError.
func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsTransportError reports whether err is (or wraps) a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// AsRemoteError returns the RemoteError wrapped in err, if any.
func AsRemoteError(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

func invalidArgument(name, reason string) error {
	return fmt.Errorf("%s %s: %w", name, reason, ErrInvalidArgument)
}

func missingField(endpoint, field string) error {
	return fmt.Errorf("%s: response has no %q field: %w", endpoint, field, ErrUnexpectedResponse)
}

func badField(endpoint, field, want string) error {
	return fmt.Errorf("%s: field %q is not %s: %w", endpoint, field, want, ErrUnexpectedResponse)
}
