package ndcore

import "github.com/gordian-engine/gnodrop/internal/ndmarker"

// NoDropPass has the same methods as [NoDropEmpty] and [NoDropMsg]
// but never fails, and holds nothing besides the value.
//
// The marker M records which enforcing type a NoDropPass stands in for,
// so that the two passthrough variants remain distinct types.
type NoDropPass[M ndmarker.Marker, T any] struct {
	value T
}

// WrapPass is the passthrough counterpart of [WrapEmpty].
func WrapPass[T any](value T) *NoDropPass[ndmarker.Empty, T] {
	return &NoDropPass[ndmarker.Empty, T]{value: value}
}

// NewPass is the passthrough counterpart of [NewEmpty].
func NewPass() *NoDropPass[ndmarker.Empty, Unit] {
	return &NoDropPass[ndmarker.Empty, Unit]{}
}

// WrapPassMsg is the passthrough counterpart of [WrapMsg].
// The message is discarded.
func WrapPassMsg[T any](value T, _ string) *NoDropPass[ndmarker.Msg, T] {
	return &NoDropPass[ndmarker.Msg, T]{value: value}
}

// GuardPass is the passthrough counterpart of [GuardMsg].
// The message is discarded.
func GuardPass(_ string) *NoDropPass[ndmarker.Msg, Unit] {
	return &NoDropPass[ndmarker.Msg, Unit]{}
}

// Unwrap returns the wrapped value.
func (w *NoDropPass[M, T]) Unwrap() T {
	return w.value
}

// Forget releases the wrapped value.
func (w *NoDropPass[M, T]) Forget() {
	var zero T
	w.value = zero
}

// Drop does nothing.
func (w *NoDropPass[M, T]) Drop() {}

// Value returns a copy of the wrapped value.
func (w *NoDropPass[M, T]) Value() T {
	return w.value
}

// Pointer returns a pointer to the wrapped value.
func (w *NoDropPass[M, T]) Pointer() *T {
	return &w.value
}
