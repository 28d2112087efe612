package guard

// runPolicy is the additional condition a guard evaluates once at the
// moment Run executes, before the armed check.
type runPolicy int

const (
	runAlways runPolicy = iota
	runOnSuccess
	runOnFailure
)

// Guard wraps a cleanup action with exactly-once scope-exit semantics.
// Created armed by the package factories ([Finally], [OnSuccess],
// [OnFailure] or their E-suffixed forms) and finalized by deferring
// [Guard.Run], a guard permanently disarms itself on the first Run, on
// [Guard.Dismiss], or by being the source of a [Guard.Move].
//
// Guards are never valid as zero values and must not be copied: the
// action is owned exclusively.
//
// A Guard belongs to the goroutine that defers it. None of its methods
// are safe for concurrent use.
type Guard struct {
	_ noCopy

	// action is nil only after the guard has been the source of a Move.
	action func() error
	armed  bool
	policy runPolicy
	cfg    config
}

// Finally returns an armed guard that runs action unconditionally at
// scope exit. The guard takes ownership of action.
func Finally(action func(), opts ...Option) *Guard {
	return newGuard(runAlways, liftAction(action), opts)
}

// FinallyE is [Finally] for actions that report an error. The semantics
// are identical; a non-nil error is delivered to the reporter and
// swallowed, never propagated. The E form exists so method values like
// f.Close bind directly.
func FinallyE(action func() error, opts ...Option) *Guard {
	return newGuard(runAlways, action, opts)
}

// OnSuccess returns an armed guard that runs action only if the scope
// exits without a failure in flight. See the package documentation for
// what counts as a failure and for the deferred-call requirement on
// [Guard.Run].
func OnSuccess(action func(), opts ...Option) *Guard {
	return newGuard(runOnSuccess, liftAction(action), opts)
}

// OnSuccessE is [OnSuccess] for actions that report an error.
func OnSuccessE(action func() error, opts ...Option) *Guard {
	return newGuard(runOnSuccess, action, opts)
}

// OnFailure returns an armed guard that runs action only if the scope
// exits with a failure in flight: a propagating panic, or a non-nil
// error bound via [WithError].
func OnFailure(action func(), opts ...Option) *Guard {
	return newGuard(runOnFailure, liftAction(action), opts)
}

// OnFailureE is [OnFailure] for actions that report an error.
func OnFailureE(action func() error, opts ...Option) *Guard {
	return newGuard(runOnFailure, action, opts)
}

func newGuard(policy runPolicy, action func() error, opts []Option) *Guard {
	if action == nil {
		panic("guard: nil action")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Guard{
		action: action,
		armed:  true,
		policy: policy,
		cfg:    cfg,
	}
}

// liftAction adapts a plain func() to the internal error-returning form.
// A nil fn stays nil so newGuard rejects it.
func liftAction(fn func()) func() error {
	if fn == nil {
		return nil
	}
	return func() error {
		fn()
		return nil
	}
}

// Run is the guard's lifetime end. If the guard is still armed after the
// policy check, the action runs exactly once, synchronously, on the
// calling goroutine. Run is idempotent: later calls do nothing.
//
// Run must be the deferred call itself ("defer g.Run()") for the
// in-flight panic signal to be visible; see the package documentation.
// When a panic is in flight, Run re-raises the same value after the
// action has run (or been skipped), so unwinding continues unchanged.
//
// Failures raised by the action never escape Run. They are classified as
// [*CleanupError] or [*CleanupPanicError], handed to the reporter, and
// discarded.
func (g *Guard) Run() {
	// The one authoritative "is a failure propagating" query Go offers.
	// Consuming it here is why Run must re-raise below.
	r := recover()
	failing := r != nil || g.boundError() != nil

	switch g.policy {
	case runOnSuccess:
		if failing {
			g.Dismiss()
		}
	case runOnFailure:
		if !failing {
			g.Dismiss()
		}
	}

	if g.armed {
		g.armed = false
		g.invoke()
	}

	if r != nil {
		panic(r)
	}
}

// Dismiss disarms the guard so the action never runs. It is idempotent
// and may be called any number of times; after Run it has no effect.
func (g *Guard) Dismiss() {
	g.armed = false
}

// Armed reports whether the guard will run its action at its next Run.
func (g *Guard) Armed() bool {
	return g.armed
}

// Move transfers the action, the armed state, and the configuration to a
// new guard and permanently disarms the receiver, which also drops its
// reference to the action. The moved-from guard never runs the action;
// the returned guard runs it exactly once at its own Run if still armed.
//
// Move is how cleanup responsibility crosses an ownership boundary, for
// example from a constructor to the object it returns on success.
func (g *Guard) Move() *Guard {
	moved := &Guard{
		action: g.action,
		armed:  g.armed,
		policy: g.policy,
		cfg:    g.cfg,
	}

	g.armed = false
	g.action = nil

	return moved
}

// boundError returns the error bound via [WithError], if any, observed
// at this instant.
func (g *Guard) boundError() error {
	if g.cfg.errp == nil {
		return nil
	}
	return *g.cfg.errp
}

// invoke runs the action inside an error-capturing boundary. Whatever
// the action raises is classified and reported, never propagated.
func (g *Guard) invoke() {
	defer func() {
		if r := recover(); r != nil {
			g.cfg.report(classifyPanic(r))
		}
	}()

	if err := g.action(); err != nil {
		g.cfg.report(&CleanupError{Err: err})
	}
}

// noCopy makes `go vet -copylocks` flag by-value Guard copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
