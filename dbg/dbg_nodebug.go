//go:build !debug

package dbg

import (
	"github.com/gordian-engine/gnodrop/internal/ndcore"
	"github.com/gordian-engine/gnodrop/internal/ndmarker"
)

// Enforcing reports whether dbg types check their obligations.
// It is false without the debug build tag.
const Enforcing = false

// Passthrough renditions; see the package documentation.

type NoDropEmpty[T any] = ndcore.NoDropPass[ndmarker.Empty, T]

type NoDropMsg[T any] = ndcore.NoDropPass[ndmarker.Msg, T]

type DropGuardEmpty = ndcore.DropGuardPass[ndmarker.Empty]

type DropGuard = ndcore.DropGuardPass[ndmarker.Msg]

func Wrap[T any](v T) *NoDrop[T] {
	return ndcore.WrapPass(v)
}

func New() *NoDrop[Unit] {
	return ndcore.NewPass()
}

func WrapMsg[T any](v T, msg string) *NoDropMsg[T] {
	return ndcore.WrapPassMsg(v, msg)
}

func Guard(msg string) *NoDropMsg[Unit] {
	return ndcore.GuardPass(msg)
}

func NewArmed(msg string) *DropGuard {
	return ndcore.NewArmedGuardPassMsg(msg)
}

func NewDisarmed(msg string) *DropGuard {
	return ndcore.NewDisarmedGuardPassMsg(msg)
}

func GuardFrom(nd *NoDropMsg[Unit]) *DropGuard {
	return ndcore.GuardPassFrom(nd)
}

func NewArmedEmpty() *DropGuardEmpty {
	return ndcore.NewArmedGuardPass()
}

func NewDisarmedEmpty() *DropGuardEmpty {
	return ndcore.NewDisarmedGuardPass()
}

func GuardEmptyFrom(nd *NoDrop[Unit]) *DropGuardEmpty {
	return ndcore.GuardPassFrom(nd)
}
