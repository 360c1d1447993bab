package gtest

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TimeFactor is a multiplier that can be controlled by the
// GNODROP_TEST_TIME_FACTOR environment variable
// to increase test-related timeouts.
//
// Garbage collection and cleanup scheduling are slower on a contended CI machine.
// Rather than requiring tests to be changed to use a longer timeout,
// the operator can set e.g. GNODROP_TEST_TIME_FACTOR=3
// to triple how long the timeouts are.
var TimeFactor ScaledDuration = 1

func init() {
	f := os.Getenv("GNODROP_TEST_TIME_FACTOR")
	if f == "" {
		return
	}

	n, err := strconv.Atoi(f)
	if err != nil {
		panic(fmt.Errorf(
			"failed to parse GNODROP_TEST_TIME_FACTOR (%q) into an integer: %w",
			f, err,
		))
	}

	if n <= 0 {
		panic(fmt.Errorf("GNODROP_TEST_TIME_FACTOR must be positive; got %d", n))
	}

	TimeFactor = ScaledDuration(n)
}

type ScaledDuration time.Duration

// ScaleMs returns ms in milliseconds, multiplied by [TimeFactor]
// so that test timeouts can be easily adjusted for machines running under load.
func ScaleMs(ms int64) ScaledDuration {
	return TimeFactor * ScaledDuration(ms) * ScaledDuration(time.Millisecond)
}
