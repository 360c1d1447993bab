package ndcore

import "errors"

// DropGuardMsg is a mutable guard that fails with its message
// if dropped while armed.
//
// The message is retained while disarmed,
// so re-arming produces the same failure text.
// The zero value is a disarmed guard with an empty message.
type DropGuardMsg struct {
	// Non-nil exactly while armed.
	nd *NoDropMsg[Unit]

	// Only meaningful while disarmed;
	// while armed, the message lives in nd.
	msg string
}

// NewArmedGuardMsg returns an armed guard failing with msg.
func NewArmedGuardMsg(msg string, site Site) *DropGuardMsg {
	return &DropGuardMsg{nd: GuardMsg(msg, site)}
}

// NewDisarmedGuardMsg returns a disarmed guard
// that will fail with msg if later armed and dropped.
func NewDisarmedGuardMsg(msg string) *DropGuardMsg {
	return &DropGuardMsg{msg: msg}
}

// GuardMsgFrom returns an armed guard that takes ownership of nd.
// nd must still be pending.
func GuardMsgFrom(nd *NoDropMsg[Unit]) *DropGuardMsg {
	if nd == nil {
		panic(errors.New("BUG: GuardMsgFrom called with nil sentinel"))
	}
	nd.ob.check()
	return &DropGuardMsg{nd: nd}
}

// Armed reports whether g is armed.
func (g *DropGuardMsg) Armed() bool {
	return g.nd != nil
}

// Disarmed reports whether g is disarmed.
func (g *DropGuardMsg) Disarmed() bool {
	return g.nd == nil
}

// Arm arms g with its retained message, reporting whether its state changed.
func (g *DropGuardMsg) Arm() bool {
	if g.nd != nil {
		return false
	}
	g.nd = GuardMsg(g.msg, Caller(1))
	g.msg = ""
	return true
}

// Disarm disarms g, reporting whether its state changed.
func (g *DropGuardMsg) Disarm() bool {
	if g.nd == nil {
		return false
	}
	g.msg = g.nd.unwrapMsg()
	g.nd = nil
	return true
}

// Drop fails with g's message if g is armed.
// A disarmed guard may always be dropped.
func (g *DropGuardMsg) Drop() {
	if g.nd == nil {
		return
	}
	nd := g.nd
	g.nd = nil
	g.msg = nd.msg
	nd.Drop()
}

// Sentinel hands the armed sentinel over to the caller,
// leaving g disarmed with its message retained.
// If g is already disarmed, Sentinel returns [ErrGuardNotArmed].
func (g *DropGuardMsg) Sentinel() (*NoDropMsg[Unit], error) {
	if g.nd == nil {
		return nil, ErrGuardNotArmed
	}
	nd := g.nd
	g.nd = nil
	g.msg = nd.msg
	return nd, nil
}
