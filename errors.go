package guard

import (
	"errors"
	"fmt"
	"runtime"
)

// CleanupError is the known kind of swallowed cleanup failure: the action
// returned a non-nil error, or panicked with a value that implements
// error. It is delivered to the guard's reporter and never propagated.
type CleanupError struct {
	// Err is the error produced by the action.
	Err error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("cleanup failed: %v", e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}

// CleanupPanicError is the unknown kind of swallowed cleanup failure: the
// action panicked with a value that does not implement error. It carries
// the goroutine stack trace captured at the point of recovery, since the
// value alone rarely identifies the offending action.
type CleanupPanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of recovery.
	Stack string
}

func (e *CleanupPanicError) Error() string {
	return fmt.Sprintf("cleanup panicked: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns nil. CleanupPanicError does not wrap another error.
func (e *CleanupPanicError) Unwrap() error { return nil }

// classifyPanic turns a value recovered from a cleanup action into the
// known or unknown swallowed-failure kind.
func classifyPanic(v any) error {
	if err, ok := v.(error); ok {
		return &CleanupError{Err: err}
	}
	return newCleanupPanicError(v)
}

func newCleanupPanicError(v any) *CleanupPanicError {
	// 8 KiB is enough for most stack traces. runtime.Stack truncates
	// gracefully if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &CleanupPanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}

// IsCleanupError reports whether err (or any error in its chain) is a
// swallowed cleanup failure of either kind.
func IsCleanupError(err error) bool {
	if err == nil {
		return false
	}
	var ce *CleanupError
	var pe *CleanupPanicError
	return errors.As(err, &ce) || errors.As(err, &pe)
}

// CauseOf unwraps the first [*CleanupError] in err's chain and returns
// its underlying cause. If err is not a CleanupError, it is returned
// as-is. Returns nil if err is nil.
func CauseOf(err error) error {
	if err == nil {
		return nil
	}

	var ce *CleanupError
	if errors.As(err, &ce) {
		return ce.Err
	}

	return err
}
