package ndcore

import (
	"fmt"
	"runtime"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type obligationState

type obligationState uint8

const (
	pending obligationState = iota
	settled
	violated
)

// obligation is the one-shot consumed flag shared by the enforcing wrappers.
type obligation struct {
	state   obligationState
	site    Site
	cleanup runtime.Cleanup
}

// track registers the leak check for w, whose obligation is ob.
// It must be called once, immediately after w is allocated.
func track[W any](w *W, ob *obligation, msg string) {
	ob.cleanup = runtime.AddCleanup(w, reportLeak, leakReport{msg: msg, site: ob.site})
}

// check panics if the obligation is no longer pending.
func (ob *obligation) check() {
	if ob.state != pending {
		panic(fmt.Errorf("%w (%s, created at %s)", ErrConsumed, ob.state, ob.site))
	}
}

// settle marks the obligation fulfilled.
func (ob *obligation) settle() {
	ob.check()
	ob.state = settled
	ob.cleanup.Stop()
}

// drop fails with msg if the obligation is still pending,
// and otherwise does nothing.
func (ob *obligation) drop(msg string) {
	if ob.state != pending {
		return
	}
	ob.state = violated
	ob.cleanup.Stop()
	fail(&ViolationError{Msg: msg, Site: ob.site})
}
