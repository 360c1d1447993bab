package gtest

import (
	"runtime"
	"time"
)

// TestingFatalHelper is a subset of [testing.TB] to satisfy the requirements of
// the receive helpers, and to allow those helpers to themselves be easily tested.
type TestingFatalHelper interface {
	Helper()

	Fatalf(format string, args ...any)
}

// ReceiveAfterGC runs the garbage collector until a value can be received from ch,
// failing tb if nothing arrives within a reasonable default timeout.
//
// It is meant for values sent from runtime cleanups or finalizers,
// which only run some time after the collection that found their object unreachable.
func ReceiveAfterGC[T any](tb TestingFatalHelper, ch <-chan T) T {
	tb.Helper()
	return ReceiveAfterGCOrTimeout(tb, ch, ScaleMs(2000))
}

// ReceiveAfterGCOrTimeout is like [ReceiveAfterGC] with an explicit timeout.
// Use [ScaleMs] to produce the timeout value.
func ReceiveAfterGCOrTimeout[T any](tb TestingFatalHelper, ch <-chan T, timeout ScaledDuration) T {
	tb.Helper()

	if ch == nil {
		tb.Fatalf("immediate failure to avoid blocking receive from nil channel %T %v", ch, ch)
		panic("unreachable")
	}

	deadline := time.NewTimer(time.Duration(timeout))
	defer deadline.Stop()

	for {
		runtime.GC()

		poll := time.NewTimer(time.Duration(ScaleMs(5)))
		select {
		case x := <-ch:
			poll.Stop()
			return x
		case <-deadline.C:
			poll.Stop()
			tb.Fatalf(
				"timed out while collecting garbage and waiting on channel %T %v; if this is flaky on only one machine, set the environment variable GNODROP_TEST_TIME_FACTOR to a value greater than the current value of %d",
				ch, ch, TimeFactor,
			)
			// tb.Fatalf would typically stop the testing goroutine,
			// but since we are mocking tb in tests,
			// we panic here, also to avoid a return value.
			panic("unreachable")
		case <-poll.C:
			// Collect again.
		}
	}
}

// NotSending checks if a value is ready to be read from ch.
// If a value is available, tb.Fatal is called, and the received value is logged.
func NotSending[T any](tb TestingFatalHelper, ch <-chan T) {
	tb.Helper()

	if ch == nil {
		tb.Fatalf("immediate failure to check that a nil channel is not sending (%T %v)", ch, ch)
		panic("unreachable")
	}

	select {
	case x := <-ch:
		tb.Fatalf("no value should have been sent on channel %T %v; got %v", ch, ch, x)
	default:
		// Okay.
	}
}
