// Package dbg provides the same wrappers and guards as package rls,
// but only enforces them in builds with the "debug" build tag,
// i.e. "go build -tags debug" or "go test -tags debug".
//
// Without the tag, every type in dbg is an alias to a passthrough type
// with identical methods and no bookkeeping:
// Drop never fails, Unwrap simply returns the value,
// and messages are discarded at construction.
// Call sites compile unchanged in both modes,
// provided they only use the methods shared by both renditions.
//
// [Enforcing] reports which rendition was compiled in.
package dbg

import (
	"log/slog"

	"github.com/gordian-engine/gnodrop/internal/ndcore"
)

// DefaultMessage is the failure text of a [NoDrop] dropped while pending,
// in debug builds.
const DefaultMessage = ndcore.DefaultMessage

// Unit is the payload of sentinel wrappers.
type Unit = ndcore.Unit

// NoDrop is the short name for [NoDropEmpty].
type NoDrop[T any] = NoDropEmpty[T]

type (
	ViolationError = ndcore.ViolationError
	Site           = ndcore.Site
)

var (
	ErrConsumed      = ndcore.ErrConsumed
	ErrGuardNotArmed = ndcore.ErrGuardNotArmed
)

// SetLogger sets the logger that records violations.
// It has no visible effect in non-debug builds, where nothing is ever violated.
func SetLogger(l *slog.Logger) {
	ndcore.SetLogger(l)
}
