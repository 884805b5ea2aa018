// Package websocket implements the server-side control plane of the
// WebSocket opening handshake along with the connection policy that
// governs a live connection's keep-alives and resource limits.
//
// See https://tools.ietf.org/html/rfc6455
//
// ValidateUpgrade checks a request head against the handshake grammar
// and either classifies it as plain HTTP, rejects it with a typed
// error, or produces a Handshake carrying the accept token and the
// offered subprotocol and extension lists. Writing the 101 response,
// selecting a subprotocol and running the frame engine stay with the
// caller. PolicyBuilder builds the immutable Policy shared by every
// connection of a listener.
package websocket
