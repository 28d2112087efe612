package guard

import "io"

// Close returns an always-run guard that closes c at scope exit. Any
// error from Close goes to the reporter, which makes this suitable for
// the common "defer f.Close() loses the error" case:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer guard.Close(f).Run()
//
// Close panics if c is nil.
func Close(c io.Closer, opts ...Option) *Guard {
	if c == nil {
		panic("guard: nil closer")
	}
	return FinallyE(c.Close, opts...)
}

// CloseOnFailure returns a guard that closes c only if the scope exits
// with a failure in flight. Paired with [Guard.Move] or [Guard.Dismiss]
// it expresses the constructor pattern "release the resource unless it
// was successfully handed off":
//
//	func open(path string) (f *os.File, err error) {
//	    f, err = os.Open(path)
//	    if err != nil {
//	        return nil, err
//	    }
//	    defer guard.CloseOnFailure(f, guard.WithError(&err)).Run()
//	    if err = validate(f); err != nil {
//	        return nil, err // guard closes f
//	    }
//	    return f, nil // guard stays idle
//	}
//
// CloseOnFailure panics if c is nil.
func CloseOnFailure(c io.Closer, opts ...Option) *Guard {
	if c == nil {
		panic("guard: nil closer")
	}
	return OnFailureE(c.Close, opts...)
}
