package guard

// config carries the per-guard settings collected by the factory.
// Move copies it wholesale to the destination guard.
type config struct {
	errp   *error
	report func(error)
}

// Option configures a [Guard] at construction time.
type Option func(*config)

func defaultConfig() config {
	return config{
		report: defaultReporter,
	}
}

// WithError binds the guarded operation's error result to the guard.
// A non-nil *err at the moment [Guard.Run] executes counts as a failure
// in flight for the [OnSuccess] and [OnFailure] policies.
//
// The usual shape binds a named return value:
//
//	func step() (err error) {
//	    defer guard.OnFailure(rollback, guard.WithError(&err)).Run()
//	    ...
//	}
//
// WithError panics if err is nil: a guard with nothing to observe is a
// construction bug, not a runtime condition.
func WithError(err *error) Option {
	return func(c *config) {
		if err == nil {
			panic("guard: WithError requires a non-nil error pointer")
		}
		c.errp = err
	}
}

// WithReporter replaces the side channel that receives failures swallowed
// during [Guard.Run]. The reporter is called synchronously on the guard's
// goroutine with a [*CleanupError] or [*CleanupPanicError] and must not
// panic. The default reporter writes one line to stderr.
//
// WithReporter panics if fn is nil.
func WithReporter(fn func(error)) Option {
	return func(c *config) {
		if fn == nil {
			panic("guard: nil reporter")
		}
		c.report = fn
	}
}
