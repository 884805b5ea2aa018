package websocket

import (
	"errors"
	"fmt"
)

// These errors are returned by ValidateUpgrade for rejections that
// carry no further diagnostic data. Every one of them is terminal for
// the request; the HTTP-level consequence is the caller's decision.
var (
	// ErrInvalidTarget is returned when the request line carries no
	// usable request-target.
	ErrInvalidTarget = errors.New("websocket protocol violation: invalid request-target")

	// ErrDuplicateKey is returned when the request carries more than
	// one Sec-WebSocket-Key header, even with identical values.
	ErrDuplicateKey = errors.New("websocket protocol violation: duplicate Sec-WebSocket-Key header")

	// ErrUnexpectedBody is returned when the upgrade request carries a
	// message body. A WebSocket handshake must have no payload.
	ErrUnexpectedBody = errors.New("websocket protocol violation: handshake request has a body")

	// ErrMissingUpgrade is returned when the Connection header asked
	// for an upgrade but no Upgrade header confirmed websocket.
	ErrMissingUpgrade = errors.New("websocket protocol violation: missing Upgrade header")

	// ErrMissingHeaders is returned when Sec-WebSocket-Key or
	// Sec-WebSocket-Version is absent.
	ErrMissingHeaders = errors.New("websocket protocol violation: missing Sec-WebSocket-Key or Sec-WebSocket-Version header")
)

// VersionError is returned by ValidateUpgrade when the client offered
// a Sec-WebSocket-Version other than 13, the only supported version.
// Use errors.As to recover the rejected value.
type VersionError struct {
	// Value is the version string offered by the client, untrimmed.
	Value string
}

func (e VersionError) Error() string {
	return fmt.Sprintf("unsupported websocket protocol version (only 13 is supported): %q", e.Value)
}

// EncodingError is returned by ValidateUpgrade when a header whose
// value must be decoded as text is not valid UTF-8.
type EncodingError struct {
	// Header names the offending header.
	Header string
	// Value is its raw, undecodable value.
	Value []byte
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("websocket protocol violation: %v header value is not valid UTF-8", e.Header)
}
