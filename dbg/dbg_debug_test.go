// Only run these tests in debug mode.

//go:build debug

package dbg_test

import (
	"testing"

	"github.com/gordian-engine/gnodrop/dbg"
	"github.com/stretchr/testify/require"
)

func TestEnforcing_debug(t *testing.T) {
	t.Parallel()

	require.True(t, dbg.Enforcing)
}

func TestDrop_debugPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, dbg.DefaultMessage, func() {
		w := dbg.Wrap(42)
		defer w.Drop()
	})

	require.PanicsWithError(t, "must commit", func() {
		g := dbg.NewArmed("must commit")
		defer g.Drop()
	})

	require.PanicsWithError(t, dbg.DefaultMessage, dbg.NewArmedEmpty().Drop)

	w := dbg.Wrap(1)
	w.Forget()
	require.Panics(t, func() { _ = w.Unwrap() })
}
