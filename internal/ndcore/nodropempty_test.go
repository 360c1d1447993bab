package ndcore_test

import (
	"path/filepath"
	"testing"

	"github.com/gordian-engine/gnodrop/internal/ndcore"
	"github.com/stretchr/testify/require"
)

func TestNoDropEmpty_Unwrap(t *testing.T) {
	t.Parallel()

	type pair struct {
		A int
		B string
	}

	require.Equal(t, 42, ndcore.WrapEmpty(42, ndcore.Caller(0)).Unwrap())
	require.Equal(t, "hello", ndcore.WrapEmpty("hello", ndcore.Caller(0)).Unwrap())
	require.Equal(t, pair{A: 1, B: "x"}, ndcore.WrapEmpty(pair{A: 1, B: "x"}, ndcore.Caller(0)).Unwrap())
	require.Equal(t, ndcore.Unit{}, ndcore.NewEmpty(ndcore.Caller(0)).Unwrap())
}

func TestNoDropEmpty_Drop_pending(t *testing.T) {
	t.Parallel()

	w := ndcore.WrapEmpty(42, ndcore.Caller(0))
	require.PanicsWithError(t, ndcore.DefaultMessage, w.Drop)

	// The failure happens once; dropping again does not panic a second time.
	require.NotPanics(t, w.Drop)
}

func TestNoDropEmpty_Drop_settled(t *testing.T) {
	t.Parallel()

	t.Run("after Unwrap", func(t *testing.T) {
		t.Parallel()

		w := ndcore.WrapEmpty(42, ndcore.Caller(0))
		_ = w.Unwrap()
		require.NotPanics(t, w.Drop)
	})

	t.Run("after Forget", func(t *testing.T) {
		t.Parallel()

		w := ndcore.NewEmpty(ndcore.Caller(0))
		require.NotPanics(t, w.Forget)
		require.NotPanics(t, w.Drop)
	})

	t.Run("deferred", func(t *testing.T) {
		t.Parallel()

		var got int
		require.NotPanics(t, func() {
			w := ndcore.WrapEmpty(7, ndcore.Caller(0))
			defer w.Drop()

			got = w.Unwrap()
		})
		require.Equal(t, 7, got)
	})
}

func TestNoDropEmpty_violationSite(t *testing.T) {
	t.Parallel()

	w := ndcore.WrapEmpty(42, ndcore.Caller(0))

	v, ok := recoverFrom(w.Drop).(*ndcore.ViolationError)
	require.True(t, ok)
	require.Equal(t, ndcore.DefaultMessage, v.Msg)
	require.False(t, v.Leaked)
	require.Equal(t, "nodropempty_test.go", filepath.Base(v.Site.File))
	require.Contains(t, v.Site.Func, "TestNoDropEmpty_violationSite")
	require.Positive(t, v.Site.Line)
}

func TestNoDropEmpty_useAfterSettle(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		settle func(w *ndcore.NoDropEmpty[int])
	}{
		{name: "Unwrap", settle: func(w *ndcore.NoDropEmpty[int]) { _ = w.Unwrap() }},
		{name: "Forget", settle: func(w *ndcore.NoDropEmpty[int]) { w.Forget() }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := ndcore.WrapEmpty(1, ndcore.Caller(0))
			tc.settle(w)

			for _, use := range []func(){
				func() { _ = w.Unwrap() },
				w.Forget,
				func() { _ = w.Value() },
				func() { _ = w.Pointer() },
			} {
				err, ok := recoverFrom(use).(error)
				require.True(t, ok)
				require.ErrorIs(t, err, ndcore.ErrConsumed)
			}
		})
	}
}

func TestNoDropEmpty_Pointer(t *testing.T) {
	t.Parallel()

	w := ndcore.WrapEmpty([]int{1, 2}, ndcore.Caller(0))
	require.Equal(t, []int{1, 2}, w.Value())

	p := w.Pointer()
	*p = append(*p, 3)
	require.Equal(t, []int{1, 2, 3}, w.Value())

	require.Equal(t, []int{1, 2, 3}, w.Unwrap())
}
