package websocket

import (
	"bytes"
	"crypto/sha1"
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// Header is a single HTTP header field as read off the wire.
// The value is kept as raw bytes and only decoded as text where a
// textual interpretation is required.
type Header struct {
	Name  string
	Value []byte
}

// RequestHead is the read-only view of a parsed HTTP request head
// consumed by ValidateUpgrade. HTTPRequestHead implements it on top of
// net/http; custom HTTP frontends can implement it directly.
type RequestHead interface {
	// ConnectionHeader returns the normalized Connection header value.
	// ok is false if the request carries no Connection header.
	ConnectionHeader() (value string, ok bool)

	// Headers returns every header field of the request.
	// Names are compared ASCII case-insensitively.
	Headers() []Header

	// Target returns the request-target. ok is false if the request
	// line was malformed and no target is available.
	Target() (target string, ok bool)

	// HasBody reports whether the request carries a message body.
	HasBody() bool
}

// Handshake holds everything harvested from a valid WebSocket upgrade
// request. It is only ever constructed once every handshake
// requirement has been satisfied.
type Handshake struct {
	// Accept is the token destined for the Sec-WebSocket-Accept
	// response header.
	Accept AcceptToken

	// Protocols lists the Sec-WebSocket-Protocol tokens offered by the
	// client, in header order, accumulated across repeated headers.
	// Duplicates are preserved; selecting one is the caller's concern.
	Protocols []string

	// Extensions lists the Sec-WebSocket-Extensions tokens under the
	// same rules as Protocols.
	Extensions []string
}

// AcceptToken is an opaque Sec-WebSocket-Accept value derived from the
// client's Sec-WebSocket-Key.
// See https://tools.ietf.org/html/rfc6455#section-1.3
type AcceptToken string

var keyGUID = []byte("258EAFA5-E914-47DA-95CA-C5AB0DC85B11")

func secWebSocketAccept(secWebSocketKey []byte) AcceptToken {
	h := sha1.New()
	h.Write(secWebSocketKey)
	h.Write(keyGUID)
	return AcceptToken(base64.StdEncoding.EncodeToString(h.Sum(nil)))
}

// ValidateUpgrade decides whether head is a WebSocket upgrade request
// and validates it against RFC 6455.
//
// It returns (nil, nil) when the request is not a WebSocket upgrade at
// all, i.e. the Connection header carries no "upgrade" token or the
// Upgrade header names some protocol other than websocket. The caller
// should then process the request as plain HTTP.
//
// It returns a nil Handshake and a non-nil error when the request
// claims to be a WebSocket upgrade but violates the handshake
// requirements. See the errors defined in this package; each rejection
// keeps its diagnostic data so the caller can log it.
//
// ValidateUpgrade never writes a response and never partially accepts.
// It is a pure function over the request head and is safe to call
// concurrently.
func ValidateUpgrade(head RequestHead) (*Handshake, error) {
	conn, ok := head.ConnectionHeader()
	if !ok || !tokenListContains(conn, "upgrade") {
		return nil, nil
	}
	if _, ok = head.Target(); !ok {
		return nil, ErrInvalidTarget
	}

	var (
		upgrade    bool
		version    bool
		haveKey    bool
		accept     AcceptToken
		protocols  []string
		extensions []string
	)
	for _, h := range head.Headers() {
		switch {
		case strings.EqualFold(h.Name, "Sec-WebSocket-Key"):
			if haveKey {
				// A second key makes the request ambiguous and is a
				// smuggling vector, so it must not be silently
				// overwritten.
				return nil, ErrDuplicateKey
			}
			haveKey = true
			accept = secWebSocketAccept(trimHeaderValue(h.Value))
		case strings.EqualFold(h.Name, "Sec-WebSocket-Version"):
			if !bytes.Equal(trimHeaderValue(h.Value), []byte("13")) {
				return nil, VersionError{Value: string(h.Value)}
			}
			version = true
		case strings.EqualFold(h.Name, "Sec-WebSocket-Protocol"):
			if !utf8.Valid(h.Value) {
				return nil, EncodingError{Header: "Sec-WebSocket-Protocol", Value: h.Value}
			}
			protocols = append(protocols, splitTokenList(string(h.Value))...)
		case strings.EqualFold(h.Name, "Sec-WebSocket-Extensions"):
			if !utf8.Valid(h.Value) {
				return nil, EncodingError{Header: "Sec-WebSocket-Extensions", Value: h.Value}
			}
			extensions = append(extensions, splitTokenList(string(h.Value))...)
		case strings.EqualFold(h.Name, "Upgrade"):
			if !strings.EqualFold(string(trimHeaderValue(h.Value)), "websocket") {
				// Some other upgrade protocol is being negotiated.
				// That redefines the whole request, not just one field.
				return nil, nil
			}
			upgrade = true
		}
	}

	if head.HasBody() {
		return nil, ErrUnexpectedBody
	}
	if !upgrade {
		return nil, ErrMissingUpgrade
	}
	if !version || !haveKey {
		return nil, ErrMissingHeaders
	}

	return &Handshake{
		Accept:     accept,
		Protocols:  protocols,
		Extensions: extensions,
	}, nil
}

// trimHeaderValue drops surrounding CR, LF, space and tab bytes before
// byte-exact comparisons.
func trimHeaderValue(v []byte) []byte {
	return bytes.Trim(v, "\r\n \t")
}
