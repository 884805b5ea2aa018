package websocket

import "time"

// Policy is the keep-alive and resource-abuse configuration a server
// applies to a live WebSocket connection.
//
// A Policy is immutable. Build one with a PolicyBuilder at listener
// setup and hand the same *Policy to every connection it governs; no
// synchronization is needed because all access after Done is
// read-only. Reconfiguration means building and distributing a new
// Policy, never mutating an existing one.
//
// The connection lifecycle machinery, not this package, enforces the
// four values: it sends a ping after PingInterval of message silence,
// terminates after MessageTimeout of message silence or ByteTimeout of
// byte silence, and aborts on any frame declaring more than
// MaxPacketSize bytes.
type Policy struct {
	pingInterval   time.Duration
	messageTimeout time.Duration
	byteTimeout    time.Duration
	maxPacketSize  int64
}

// PingInterval is the time without a fully received message after
// which a ping must be sent.
func (p *Policy) PingInterval() time.Duration {
	return p.pingInterval
}

// MessageTimeout is the time without a fully received message after
// which the connection must be terminated.
func (p *Policy) MessageTimeout() time.Duration {
	return p.messageTimeout
}

// ByteTimeout is the time without any byte activity, outgoing pings
// excluded, after which the connection must be terminated.
func (p *Policy) ByteTimeout() time.Duration {
	return p.byteTimeout
}

// MaxPacketSize is the hard cap on a single frame's declared length.
func (p *Policy) MaxPacketSize() int64 {
	return p.maxPacketSize
}

// PolicyBuilder stages Policy values before they are frozen with Done.
//
// The builder is meant for the single goroutine doing configuration;
// it is not safe for concurrent use. Setters perform no validation,
// zero or reversed durations included. Enforcing sane values is a
// deployment concern.
type PolicyBuilder struct {
	p Policy
}

// NewPolicyBuilder returns a builder holding the defaults:
// 10s ping interval, 30s message timeout, 30s byte timeout and a
// 10 MiB packet size cap.
func NewPolicyBuilder() *PolicyBuilder {
	return &PolicyBuilder{p: Policy{
		pingInterval:   time.Second * 10,
		messageTimeout: time.Second * 30,
		byteTimeout:    time.Second * 30,
		maxPacketSize:  10 << 20,
	}}
}

// PingInterval sets the ping interval. Default is 10 seconds.
//
// If no messages have been received within this interval, a ping is
// sent. Only full messages count, so a ping still goes out while some
// large frame is trickling in. The interval cannot be removed, only
// set sufficiently large. Tune the inactivity timeouts along with it.
func (b *PolicyBuilder) PingInterval(d time.Duration) *PolicyBuilder {
	b.p.pingInterval = d
	return b
}

// MessageTimeout sets the message-level inactivity timeout.
// Default is 30 seconds.
//
// The connection is shut down if no full message arrives within this
// interval, so it must be large enough for the slowest client to
// deliver its largest frame plus another ping. Two ways to use it:
// about 2.5x the ping interval detects peers whose host has died,
// while a value below the ping interval sheds connections that are
// alive but idle, the way HTTP servers drop inactive connections.
func (b *PolicyBuilder) MessageTimeout(d time.Duration) *PolicyBuilder {
	b.p.messageTimeout = d
	return b
}

// ByteTimeout sets the byte-level inactivity timeout.
// Default is 30 seconds.
//
// This is the less strict timer: any byte sent or received resets it,
// outgoing pings excepted. Raise it toward the message timeout to
// tolerate peers that dribble a byte at a time; lower it below a large
// message timeout to drop connections that have gone fully silent
// while still leaving room for big messages. A value above the message
// timeout buys nothing.
func (b *PolicyBuilder) ByteTimeout(d time.Duration) *PolicyBuilder {
	b.p.byteTimeout = d
	return b
}

// InactivityTimeout sets the message timeout and the byte timeout to
// the same value.
func (b *PolicyBuilder) InactivityTimeout(d time.Duration) *PolicyBuilder {
	b.p.messageTimeout = d
	b.p.byteTimeout = d
	return b
}

// MaxPacketSize sets the maximum declared frame size in bytes.
// Default is 10 MiB. A frame declaring a larger size aborts the
// connection immediately.
func (b *PolicyBuilder) MaxPacketSize(size int64) *PolicyBuilder {
	b.p.maxPacketSize = size
	return b
}

// Done freezes the builder's current values into a shared, read-only
// Policy. The builder stays usable; mutating it afterwards or calling
// Done again never affects handles already given out.
func (b *PolicyBuilder) Done() *Policy {
	p := b.p
	return &p
}
