package guard

import (
	"fmt"
	"os"
)

// defaultReporter is the last-resort side channel for failures swallowed
// during Run: one line per failure on stderr, best effort. It is not a
// logging facility; replace it per guard with [WithReporter] when the
// host has somewhere better to put diagnostics.
func defaultReporter(err error) {
	switch e := err.(type) {
	case *CleanupPanicError:
		fmt.Fprintf(os.Stderr, "guard: cleanup panicked with non-error value %v\n%s", e.Value, e.Stack)
	default:
		fmt.Fprintf(os.Stderr, "guard: %v\n", err)
	}
}
