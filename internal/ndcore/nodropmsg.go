package ndcore

// NoDropMsg wraps a value that must be unwrapped or forgotten,
// and fails with its own message if dropped while pending.
type NoDropMsg[T any] struct {
	value T
	msg   string
	ob    obligation
}

// WrapMsg returns a new wrapper around value.
// If the wrapper is dropped while pending, the failure text is msg.
func WrapMsg[T any](value T, msg string, site Site) *NoDropMsg[T] {
	w := &NoDropMsg[T]{
		value: value,
		msg:   msg,
		ob:    obligation{site: site},
	}
	track(w, &w.ob, msg)
	return w
}

// GuardMsg returns a sentinel wrapper with no payload and the given failure message.
func GuardMsg(msg string, site Site) *NoDropMsg[Unit] {
	return WrapMsg(Unit{}, msg, site)
}

// Unwrap settles the wrapper and returns the wrapped value.
func (w *NoDropMsg[T]) Unwrap() T {
	w.ob.settle()
	v := w.value
	var zero T
	w.value = zero
	return v
}

// Forget settles the wrapper and releases the wrapped value.
func (w *NoDropMsg[T]) Forget() {
	w.ob.settle()
	var zero T
	w.value = zero
}

// Drop panics with a [*ViolationError] carrying w's message if w is still pending.
// Drop is a no-op after Unwrap or Forget.
func (w *NoDropMsg[T]) Drop() {
	w.ob.drop(w.msg)
}

// Value returns a copy of the wrapped value without settling w.
func (w *NoDropMsg[T]) Value() T {
	w.ob.check()
	return w.value
}

// Pointer returns a pointer to the wrapped value without settling w.
func (w *NoDropMsg[T]) Pointer() *T {
	w.ob.check()
	return &w.value
}

// unwrapMsg settles the wrapper and returns its message.
// Guards use this to disarm without raising the failure.
func (w *NoDropMsg[T]) unwrapMsg() string {
	w.ob.settle()
	var zero T
	w.value = zero
	return w.msg
}
