// Package ndcore contains the wrapper and guard implementations
// behind the public rls and dbg packages.
//
// A wrapper holds a value that must leave the wrapper through exactly one of
// Unwrap or Forget. Go has no destructors and no move semantics,
// so the obligation is tracked at runtime with a one-shot flag,
// and "implicit destruction" is detected in two ways:
//
//   - Drop is the scoped check, intended to be deferred right after construction.
//     If the wrapper is still pending when Drop runs,
//     Drop panics on the calling goroutine with a [*ViolationError].
//   - Every enforcing wrapper registers a runtime cleanup at construction.
//     If a pending wrapper becomes unreachable, the cleanup panics
//     on the runtime's cleanup goroutine, which terminates the process.
//     Unwrap, Forget, and Drop all cancel the cleanup.
//
// Any access after the wrapper has been settled panics with an error matching [ErrConsumed].
//
// The passthrough types ([NoDropPass], [DropGuardPass]) expose the same methods
// with none of the bookkeeping.
// The dbg package substitutes them for the enforcing types in non-debug builds.
//
// The guard types toggle between an armed state, holding an enforcing sentinel wrapper,
// and a disarmed state, holding nothing but the retained message.
// Guards live in this package so that disarming can take the message
// back out of the sentinel without going through the failure path.
package ndcore

// Unit is the payload of sentinel wrappers, which carry only the obligation.
type Unit = struct{}
