package ndcore

// NoDropEmpty wraps a value that must be unwrapped or forgotten.
// Dropping it while pending fails with [DefaultMessage].
//
// NoDropEmpty values must be created through [WrapEmpty] or [NewEmpty]
// and are always handled by pointer.
type NoDropEmpty[T any] struct {
	value T
	ob    obligation
}

// WrapEmpty returns a new wrapper around value.
// The site is reported if the wrapper is dropped while pending.
func WrapEmpty[T any](value T, site Site) *NoDropEmpty[T] {
	w := &NoDropEmpty[T]{
		value: value,
		ob:    obligation{site: site},
	}
	track(w, &w.ob, DefaultMessage)
	return w
}

// NewEmpty returns a sentinel wrapper with no payload.
func NewEmpty(site Site) *NoDropEmpty[Unit] {
	return WrapEmpty(Unit{}, site)
}

// Unwrap settles the wrapper and returns the wrapped value.
func (w *NoDropEmpty[T]) Unwrap() T {
	w.ob.settle()
	v := w.value
	var zero T
	w.value = zero
	return v
}

// Forget settles the wrapper and releases the wrapped value.
func (w *NoDropEmpty[T]) Forget() {
	w.ob.settle()
	var zero T
	w.value = zero
}

// Drop panics with a [*ViolationError] if w is still pending.
// Drop is a no-op after Unwrap or Forget,
// so it is safe to defer immediately after creating w.
func (w *NoDropEmpty[T]) Drop() {
	w.ob.drop(DefaultMessage)
}

// Value returns a copy of the wrapped value without settling w.
func (w *NoDropEmpty[T]) Value() T {
	w.ob.check()
	return w.value
}

// Pointer returns a pointer to the wrapped value without settling w.
// The pointer must not be retained past Unwrap or Forget.
func (w *NoDropEmpty[T]) Pointer() *T {
	w.ob.check()
	return &w.value
}
