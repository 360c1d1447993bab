package ndcore_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gordian-engine/gnodrop/internal/ndcore"
	"github.com/stretchr/testify/require"
)

func TestNoDropMsg_Unwrap(t *testing.T) {
	t.Parallel()

	require.Equal(t, 42, ndcore.WrapMsg(42, "custom message", ndcore.Caller(0)).Unwrap())

	// Messages built at runtime are accepted just like constants.
	msg := strings.Repeat("owned ", 2) + "message"
	require.Equal(t, "v", ndcore.WrapMsg("v", msg, ndcore.Caller(0)).Unwrap())

	require.Equal(t, ndcore.Unit{}, ndcore.GuardMsg("unit", ndcore.Caller(0)).Unwrap())
}

func TestNoDropMsg_Drop_pending(t *testing.T) {
	t.Parallel()

	for _, msg := range []string{
		"custom panic message",
		"unit value must be consumed",
		"",
	} {
		w := ndcore.WrapMsg(42, msg, ndcore.Caller(0))
		require.PanicsWithError(t, msg, w.Drop)

		g := ndcore.GuardMsg(msg, ndcore.Caller(0))
		v, ok := recoverFrom(g.Drop).(*ndcore.ViolationError)
		require.True(t, ok)
		require.Equal(t, msg, v.Msg)
		require.Equal(t, "nodropmsg_test.go", filepath.Base(v.Site.File))
	}
}

func TestNoDropMsg_Forget(t *testing.T) {
	t.Parallel()

	w := ndcore.WrapMsg(42, "custom message", ndcore.Caller(0))
	require.NotPanics(t, w.Forget)
	require.NotPanics(t, w.Drop)

	err, ok := recoverFrom(func() { _ = w.Value() }).(error)
	require.True(t, ok)
	require.ErrorIs(t, err, ndcore.ErrConsumed)
}

func TestNoDropMsg_doubleUnwrap(t *testing.T) {
	t.Parallel()

	w := ndcore.WrapMsg(42, "custom message", ndcore.Caller(0))
	require.Equal(t, 42, w.Unwrap())

	err, ok := recoverFrom(func() { _ = w.Unwrap() }).(error)
	require.True(t, ok)
	require.ErrorIs(t, err, ndcore.ErrConsumed)
	require.Contains(t, err.Error(), "nodropmsg_test.go")
	require.Contains(t, err.Error(), "settled")
}

func TestNoDropMsg_useAfterViolation(t *testing.T) {
	t.Parallel()

	w := ndcore.WrapMsg(42, "violated message", ndcore.Caller(0))
	require.PanicsWithError(t, "violated message", w.Drop)

	err, ok := recoverFrom(func() { _ = w.Unwrap() }).(error)
	require.True(t, ok)
	require.ErrorIs(t, err, ndcore.ErrConsumed)
	require.Contains(t, err.Error(), "violated")
}

func TestNoDropMsg_Pointer(t *testing.T) {
	t.Parallel()

	w := ndcore.WrapMsg(map[string]int{}, "map must be returned", ndcore.Caller(0))
	(*w.Pointer())["a"] = 1
	require.Equal(t, map[string]int{"a": 1}, w.Value())
	require.Equal(t, map[string]int{"a": 1}, w.Unwrap())
}
