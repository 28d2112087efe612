// Package guard provides deterministic scope-exit actions for Go.
//
// A guard wraps a cleanup action and runs it when control leaves the
// enclosing scope, across every exit path: normal return, early return,
// or a propagating panic. Guards make "undo this unless we got to the
// end" and "always release this" explicit and exactly-once.
//
// # Running Cleanup
//
// The primary entry point is [Finally], which arms a guard that runs its
// action unconditionally at scope exit:
//
//	g := guard.Finally(func() { os.Remove(tmp) })
//	defer g.Run()
//
// [Guard.Dismiss] disarms a guard so the action never runs; this is how
// "keep the file after all" is expressed. Dismiss is idempotent.
//
// # Conditional Guards
//
// [OnSuccess] arms a guard that runs only when the scope exits normally;
// [OnFailure] arms one that runs only when the scope exits because a
// failure is in flight. A failure is in flight when either
//
//   - a panic is currently unwinding the calling goroutine, or
//   - an error pointer bound with [WithError] holds a non-nil error at
//     the moment [Guard.Run] executes.
//
// The panic signal is observed via recover, which only works when Run is
// the deferred call itself. Write
//
//	defer g.Run()
//
// and not "defer func() { g.Run() }()": wrapping Run in another function
// hides the in-flight panic from the guard, and an OnFailure guard would
// then misclassify a panicking exit as a normal one. Run re-raises the
// recovered value unchanged, so the panic continues to propagate exactly
// as it would have without the guard. Nested or secondary panics cannot
// be distinguished; behavior is only specified for a single in-flight
// panic.
//
// The [WithError] form is the idiomatic choice when failure is an error
// return rather than a panic:
//
//	func write(path string, data []byte) (err error) {
//	    f, cerr := os.Create(path)
//	    if cerr != nil {
//	        return cerr
//	    }
//	    defer guard.CloseOnFailure(f, guard.WithError(&err)).Run()
//	    ...
//	}
//
// # Ownership
//
// A guard owns its action exclusively. Guards are pointer-only values and
// must not be copied. [Guard.Move] transfers the action and armed state to
// a fresh guard and permanently disarms the source; use it to hand cleanup
// responsibility across an ownership boundary, such as from a constructor
// to the object it returns.
//
// Guards belong to a single goroutine. They hold no locks, and the
// in-flight panic query resolves against the calling goroutine only.
//
// # Failures Inside Cleanup
//
// An error or panic raised by the action during [Guard.Run] never escapes
// the guard. It is recovered, classified, and delivered to a side-channel
// reporter (stderr by default, replaceable via [WithReporter]):
//
//   - [*CleanupError] wraps a non-nil error returned by an E-form action,
//     or a recovered panic value that implements error.
//   - [*CleanupPanicError] wraps any other panic value, together with the
//     stack trace captured at the point of recovery.
//
// A cleanup action failing while the scope is already unwinding must not
// replace the original failure or crash the process; swallowing here is
// the contract, not a bug.
//
// # Checked Conversions
//
// The [github.com/ferrovax/guard/checked] subpackage provides checked
// numeric narrowing (Narrow, MustNarrow, Trunc) and bounds-checked
// element access (At, AtString, NotNil) built on a replaceable
// precondition hook.
package guard
