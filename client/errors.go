package client

import "errors"

var (
	// ErrVersionMismatch is returned when a response declares a protocol
	// version other than "2.0". Responses with no version marker are
	// accepted. Test with errors.Is; the wrapped message carries the
	// offending marker.
	ErrVersionMismatch = errors.New("jsonrpc: incompatible protocol version")

	// ErrNonceMismatch is returned when a response id does not match the
	// request id. This signals cross-talk on a shared connection or a
	// misbehaving server. Test with errors.Is; the wrapped message carries
	// the got/want ids.
	ErrNonceMismatch = errors.New("jsonrpc: response id does not match request id")
)

// TransportError wraps a failure to deliver the request or receive the
// response, after the single stale-connection resend (if any) has been
// spent. The underlying cause is reachable through Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "jsonrpc: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SerializationError wraps a failure to encode the request or to decode the
// response into the expected shape. Serialization failures are never
// retried.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return "jsonrpc: serialization: " + e.Err.Error()
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
