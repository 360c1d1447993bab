package ndcore

import (
	"errors"
	"log/slog"
	"sync/atomic"
)

// DefaultMessage is the failure text of wrappers constructed without a custom message.
const DefaultMessage = "Value was dropped without being unwrapped"

// ErrConsumed is the panic cause when a wrapper is used
// after Unwrap or Forget has already been called.
var ErrConsumed = errors.New("value already consumed")

// ErrGuardNotArmed is returned when requesting the sentinel of a disarmed guard.
var ErrGuardNotArmed = errors.New("guard is not armed")

// ViolationError is the panic value raised when a wrapper
// is destroyed without being unwrapped or forgotten.
type ViolationError struct {
	// Msg is the custom message of the wrapper,
	// or [DefaultMessage] for wrappers without one.
	Msg string

	// Site is where the wrapper was created
	// (or where its guard was last armed).
	Site Site

	// Leaked is set when the wrapper was found by the garbage collector
	// instead of by an explicit Drop.
	Leaked bool
}

// Error returns Msg unchanged, so that the failure text
// is exactly the message given at the call site.
func (e *ViolationError) Error() string {
	return e.Msg
}

var logger atomic.Pointer[slog.Logger]

// SetLogger sets the logger that records violations before the process fails.
// Until SetLogger is called, [slog.Default] is used.
func SetLogger(l *slog.Logger) {
	if l == nil {
		panic(errors.New("BUG: SetLogger called with nil logger"))
	}
	logger.Store(l)
}

func currentLogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// fail logs and panics with v.
func fail(v *ViolationError) {
	currentLogger().Error(
		"Value dropped without being consumed",
		"msg", v.Msg,
		"site", v.Site,
		"leaked", v.Leaked,
	)
	panic(v)
}

// leakHandler overrides the response to a leaked wrapper.
// It is only set in tests; a nil handler means fail.
var leakHandler atomic.Pointer[func(*ViolationError)]

// leakReport is the cleanup argument for an enforcing wrapper.
// It must not refer back to the wrapper,
// or the wrapper would never become unreachable.
type leakReport struct {
	msg  string
	site Site
}

func reportLeak(r leakReport) {
	v := &ViolationError{Msg: r.msg, Site: r.site, Leaked: true}
	if h := leakHandler.Load(); h != nil {
		(*h)(v)
		return
	}
	fail(v)
}
