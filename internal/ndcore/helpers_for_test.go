package ndcore_test

// recoverFrom calls fn and returns the value it panicked with,
// or nil if it returned normally.
func recoverFrom(fn func()) (r any) {
	defer func() {
		r = recover()
	}()
	fn()
	return nil
}
