package checked

// Expects is the precondition hook consulted before every bounds-checked
// access. It must be deterministic, synchronous, and must not return
// when ok is false. The default panics.
//
// Hosts that have their own contract-violation machinery (abort, report
// and crash, test harness capture) may replace Expects once at program
// start. The replacement is trusted to halt on violation; this package
// proceeds with the access if Expects returns.
var Expects = func(ok bool) {
	if !ok {
		panic("checked: precondition violation")
	}
}

// NotNil validates p via [Expects] and returns it unchanged. It is meant
// for constructors and configuration paths where a nil dependency is a
// programming error:
//
//	store := checked.NotNil(cfg.Store)
func NotNil[T any](p *T) *T {
	Expects(p != nil)
	return p
}
