package gtest

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// NewLogger returns a *slog.Logger associated with the test t.
func NewLogger(t testing.TB) *slog.Logger {
	// Keep slogt behind gtest so that tests depend on one helper package
	// instead of on the external module directly.
	return slogt.New(t, slogt.Text())
}
