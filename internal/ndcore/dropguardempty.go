package ndcore

import "errors"

// DropGuardEmpty is a mutable guard that fails with [DefaultMessage]
// if dropped while armed.
//
// The zero value is a disarmed guard.
type DropGuardEmpty struct {
	// Non-nil exactly while armed.
	nd *NoDropEmpty[Unit]
}

// NewArmedGuardEmpty returns an armed guard.
func NewArmedGuardEmpty(site Site) *DropGuardEmpty {
	return &DropGuardEmpty{nd: NewEmpty(site)}
}

// NewDisarmedGuardEmpty returns a disarmed guard.
func NewDisarmedGuardEmpty() *DropGuardEmpty {
	return new(DropGuardEmpty)
}

// GuardEmptyFrom returns an armed guard that takes ownership of nd.
// nd must still be pending.
func GuardEmptyFrom(nd *NoDropEmpty[Unit]) *DropGuardEmpty {
	if nd == nil {
		panic(errors.New("BUG: GuardEmptyFrom called with nil sentinel"))
	}
	nd.ob.check()
	return &DropGuardEmpty{nd: nd}
}

// Armed reports whether g is armed.
func (g *DropGuardEmpty) Armed() bool {
	return g.nd != nil
}

// Disarmed reports whether g is disarmed.
func (g *DropGuardEmpty) Disarmed() bool {
	return g.nd == nil
}

// Arm arms g, reporting whether its state changed.
func (g *DropGuardEmpty) Arm() bool {
	if g.nd != nil {
		return false
	}
	g.nd = NewEmpty(Caller(1))
	return true
}

// Disarm disarms g, reporting whether its state changed.
func (g *DropGuardEmpty) Disarm() bool {
	if g.nd == nil {
		return false
	}
	g.nd.Forget()
	g.nd = nil
	return true
}

// Drop fails if g is armed. A disarmed guard may always be dropped.
func (g *DropGuardEmpty) Drop() {
	if g.nd == nil {
		return
	}
	nd := g.nd
	g.nd = nil
	nd.Drop()
}

// Sentinel hands the armed sentinel over to the caller,
// leaving g disarmed.
// If g is already disarmed, Sentinel returns [ErrGuardNotArmed].
func (g *DropGuardEmpty) Sentinel() (*NoDropEmpty[Unit], error) {
	if g.nd == nil {
		return nil, ErrGuardNotArmed
	}
	nd := g.nd
	g.nd = nil
	return nd, nil
}
