package ndcore

import "github.com/gordian-engine/gnodrop/internal/ndmarker"

// DropGuardPass has the same methods as [DropGuardEmpty] and [DropGuardMsg]
// but never fails. Messages passed to its constructors are discarded.
type DropGuardPass[M ndmarker.Marker] struct {
	armed bool
}

func NewArmedGuardPass() *DropGuardPass[ndmarker.Empty] {
	return &DropGuardPass[ndmarker.Empty]{armed: true}
}

func NewDisarmedGuardPass() *DropGuardPass[ndmarker.Empty] {
	return &DropGuardPass[ndmarker.Empty]{}
}

func NewArmedGuardPassMsg(_ string) *DropGuardPass[ndmarker.Msg] {
	return &DropGuardPass[ndmarker.Msg]{armed: true}
}

func NewDisarmedGuardPassMsg(_ string) *DropGuardPass[ndmarker.Msg] {
	return &DropGuardPass[ndmarker.Msg]{}
}

// GuardPassFrom returns an armed guard in place of the passthrough sentinel.
func GuardPassFrom[M ndmarker.Marker](_ *NoDropPass[M, Unit]) *DropGuardPass[M] {
	return &DropGuardPass[M]{armed: true}
}

func (g *DropGuardPass[M]) Armed() bool {
	return g.armed
}

func (g *DropGuardPass[M]) Disarmed() bool {
	return !g.armed
}

// Arm arms g, reporting whether its state changed.
func (g *DropGuardPass[M]) Arm() bool {
	was := g.armed
	g.armed = true
	return !was
}

// Disarm disarms g, reporting whether its state changed.
func (g *DropGuardPass[M]) Disarm() bool {
	was := g.armed
	g.armed = false
	return was
}

// Drop does nothing, regardless of state.
func (g *DropGuardPass[M]) Drop() {}

// Sentinel returns a passthrough sentinel and disarms g,
// or returns [ErrGuardNotArmed] if g was not armed.
func (g *DropGuardPass[M]) Sentinel() (*NoDropPass[M, Unit], error) {
	if !g.armed {
		return nil, ErrGuardNotArmed
	}
	g.armed = false
	return &NoDropPass[M, Unit]{}, nil
}
