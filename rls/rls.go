// Package rls provides wrappers and guards that are enforced in every build.
//
// A value wrapped with [Wrap] or [WrapMsg] must leave the wrapper
// through exactly one call to Unwrap or Forget.
// Destroying it any other way is a programming error:
// a deferred Drop on a pending wrapper panics with a [*ViolationError],
// and a pending wrapper reclaimed by the garbage collector
// crashes the process from the runtime's cleanup goroutine.
//
//	tx := rls.WrapMsg(db.Begin(), "transaction neither committed nor rolled back")
//	defer tx.Drop()
//	...
//	return tx.Unwrap().Commit()
//
// Use package dbg instead where the check should only be paid for in debug builds.
package rls

import (
	"log/slog"

	"github.com/gordian-engine/gnodrop/internal/ndcore"
)

// Enforcing is always true for rls.
const Enforcing = true

// DefaultMessage is the failure text of a [NoDrop] dropped while pending.
const DefaultMessage = ndcore.DefaultMessage

// Unit is the payload of sentinel wrappers.
type Unit = ndcore.Unit

// NoDropEmpty is a wrapper without a custom failure message.
type NoDropEmpty[T any] = ndcore.NoDropEmpty[T]

// NoDrop is the short name for [NoDropEmpty].
type NoDrop[T any] = NoDropEmpty[T]

// NoDropMsg is a wrapper that fails with its own message.
type NoDropMsg[T any] = ndcore.NoDropMsg[T]

// DropGuardEmpty is an arm/disarm guard without a custom failure message.
type DropGuardEmpty = ndcore.DropGuardEmpty

// DropGuard is an arm/disarm guard that fails with its own message.
type DropGuard = ndcore.DropGuardMsg

type (
	ViolationError = ndcore.ViolationError
	Site           = ndcore.Site
)

var (
	ErrConsumed      = ndcore.ErrConsumed
	ErrGuardNotArmed = ndcore.ErrGuardNotArmed
)

// SetLogger sets the logger that records violations.
func SetLogger(l *slog.Logger) {
	ndcore.SetLogger(l)
}

// Wrap wraps v in a [NoDrop].
func Wrap[T any](v T) *NoDrop[T] {
	return ndcore.WrapEmpty(v, ndcore.Caller(1))
}

// New returns a sentinel [NoDrop] with no payload.
func New() *NoDrop[Unit] {
	return ndcore.NewEmpty(ndcore.Caller(1))
}

// WrapMsg wraps v in a [NoDropMsg] that fails with msg.
func WrapMsg[T any](v T, msg string) *NoDropMsg[T] {
	return ndcore.WrapMsg(v, msg, ndcore.Caller(1))
}

// Guard returns a sentinel [NoDropMsg] that fails with msg.
func Guard(msg string) *NoDropMsg[Unit] {
	return ndcore.GuardMsg(msg, ndcore.Caller(1))
}

// NewArmed returns an armed [DropGuard] failing with msg.
func NewArmed(msg string) *DropGuard {
	return ndcore.NewArmedGuardMsg(msg, ndcore.Caller(1))
}

// NewDisarmed returns a disarmed [DropGuard] that retains msg for later arming.
func NewDisarmed(msg string) *DropGuard {
	return ndcore.NewDisarmedGuardMsg(msg)
}

// GuardFrom returns an armed [DropGuard] owning the pending sentinel nd.
func GuardFrom(nd *NoDropMsg[Unit]) *DropGuard {
	return ndcore.GuardMsgFrom(nd)
}

// NewArmedEmpty returns an armed [DropGuardEmpty].
func NewArmedEmpty() *DropGuardEmpty {
	return ndcore.NewArmedGuardEmpty(ndcore.Caller(1))
}

// NewDisarmedEmpty returns a disarmed [DropGuardEmpty].
func NewDisarmedEmpty() *DropGuardEmpty {
	return ndcore.NewDisarmedGuardEmpty()
}

// GuardEmptyFrom returns an armed [DropGuardEmpty] owning the pending sentinel nd.
func GuardEmptyFrom(nd *NoDrop[Unit]) *DropGuardEmpty {
	return ndcore.GuardEmptyFrom(nd)
}
