// Only run these tests in non-debug mode.

//go:build !debug

package dbg_test

import (
	"testing"

	"github.com/gordian-engine/gnodrop/dbg"
	"github.com/stretchr/testify/require"
)

func TestEnforcing_nodebug(t *testing.T) {
	t.Parallel()

	require.False(t, dbg.Enforcing)
}

func TestDrop_nodebugNeverPanics(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		w := dbg.Wrap(42)
		defer w.Drop()
	})

	require.NotPanics(t, func() {
		g := dbg.NewArmed("must commit")
		defer g.Drop()
	})

	require.NotPanics(t, dbg.NewArmedEmpty().Drop)
	require.NotPanics(t, dbg.Guard("ignored").Drop)

	// No consumed flag to trip.
	w := dbg.Wrap(1)
	require.Equal(t, 1, w.Unwrap())
	require.Equal(t, 1, w.Unwrap())
}
