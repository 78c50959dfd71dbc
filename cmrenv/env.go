package cmrenv

import (
	"context"
	"time"
)

// Params is a read-only-during-a-call parameter record (spec.md §5:
// "Parameter records are read-only during a call"). The zero value turns
// every option off, SP reductions included; DefaultParams returns the
// defaults New uses.
type Params struct {
	// CompleteTree is read by no package: decomp.Decompose always expands
	// every subtree fully, so setting it has no effect.
	CompleteTree bool
	// AllowSPReductions permits the series–parallel front end to run before
	// connectivity reduction; disabling it is useful for testing decomp in
	// isolation.
	AllowSPReductions bool
	// Debug is set by WithDebug and read by no package; no Consistency()
	// audit runs automatically after a mutating call.
	Debug bool
}

// DefaultParams returns the Params used when a caller does not override
// anything: full tree completion off (fast path), SP reductions on, debug off.
func DefaultParams() Params {
	return Params{CompleteTree: false, AllowSPReductions: true, Debug: false}
}

// Option configures an Env, following the WithXxx(...) functional-option
// convention used throughout the teacher (core.GraphOption, builder.BuilderOption).
type Option func(*Env)

// WithTimeLimit bounds every subsequent call made through this Env to d.
// It is the Go-idiomatic rendering of spec.md §5's timeLimit parameter:
// a context.Context deadline threaded through every entry point instead of
// a raw float seconds value, matching flow.Dinic's ctx-based cancellation
// in the teacher.
func WithTimeLimit(d time.Duration) Option {
	return func(e *Env) { e.timeLimit = d }
}

// WithStats attaches a caller-owned Stats so counters survive after the call.
func WithStats(s *Stats) Option {
	return func(e *Env) { e.Stats = s }
}

// WithParams overrides the default Params.
func WithParams(p Params) Option {
	return func(e *Env) { e.Params = p }
}

// WithDebug toggles Params.Debug.
func WithDebug(on bool) Option {
	return func(e *Env) { e.Params.Debug = on }
}

// Env is the environment handle threaded through every cmr entry point. It
// owns no process-wide state: each Env is independent and safe to use from
// exactly one goroutine at a time, while distinct Envs may run concurrently
// with no synchronization, per spec.md §5.
type Env struct {
	// Params is read-only once a call begins.
	Params Params
	// Stats accumulates counters for the lifetime of this Env.
	Stats *Stats

	timeLimit time.Duration
}

// New constructs an Env with DefaultParams and a fresh Stats, then applies opts.
func New(opts ...Option) *Env {
	e := &Env{Params: DefaultParams(), Stats: &Stats{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Context returns a context.Context bound to this Env's time limit (or
// context.Background() if none was set) together with its cancel function.
// Callers must always invoke cancel, typically via defer.
func (e *Env) Context(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if e == nil || e.timeLimit <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, e.timeLimit)
}

// Deadline reports whether ctx has already exceeded its deadline, returning
// ErrTimeout (wrapped with caller) if so. Subsystems call this at the
// checkpoints spec.md §5 lists: before each column (tdec), before each node
// expansion (decomp), after each scan pass (seriespar), and between
// enumeration rounds (property's k-modular driver).
func Deadline(ctx context.Context, checkpoint string) error {
	select {
	case <-ctx.Done():
		return Wrap(checkpoint, ErrTimeout)
	default:
		return nil
	}
}

// bump increments a named Stats counter by delta, tolerating a nil Env or
// Stats so packages can call it unconditionally.
func (e *Env) bump(counter *int, delta int) {
	if e == nil || counter == nil {
		return
	}
	*counter += delta
}

// BumpSPReductions increments Stats.SPReductionsApplied.
func (e *Env) BumpSPReductions(n int) {
	if e == nil || e.Stats == nil {
		return
	}
	e.bump(&e.Stats.SPReductionsApplied, n)
}

// BumpSPScanPasses increments Stats.SPScanPasses.
func (e *Env) BumpSPScanPasses(n int) {
	if e == nil || e.Stats == nil {
		return
	}
	e.bump(&e.Stats.SPScanPasses, n)
}

// BumpDecompositionNodes increments Stats.DecompositionNodes.
func (e *Env) BumpDecompositionNodes(n int) {
	if e == nil || e.Stats == nil {
		return
	}
	e.bump(&e.Stats.DecompositionNodes, n)
}

// BumpSeparationsFound increments Stats.SeparationsFound.
func (e *Env) BumpSeparationsFound(n int) {
	if e == nil || e.Stats == nil {
		return
	}
	e.bump(&e.Stats.SeparationsFound, n)
}

// BumpColumnsAdded increments Stats.ColumnsAdded.
func (e *Env) BumpColumnsAdded(n int) {
	if e == nil || e.Stats == nil {
		return
	}
	e.bump(&e.Stats.ColumnsAdded, n)
}

// BumpPrimeRebuilds increments Stats.PrimeRebuilds.
func (e *Env) BumpPrimeRebuilds(n int) {
	if e == nil || e.Stats == nil {
		return
	}
	e.bump(&e.Stats.PrimeRebuilds, n)
}

// BumpPivots increments Stats.PivotsPerformed.
func (e *Env) BumpPivots(n int) {
	if e == nil || e.Stats == nil {
		return
	}
	e.bump(&e.Stats.PivotsPerformed, n)
}

// BumpCamionCycles increments Stats.CamionCyclesWalked.
func (e *Env) BumpCamionCycles(n int) {
	if e == nil || e.Stats == nil {
		return
	}
	e.bump(&e.Stats.CamionCyclesWalked, n)
}

// BumpSubmatricesEnumerated increments Stats.SubmatricesEnumerated.
func (e *Env) BumpSubmatricesEnumerated(n int) {
	if e == nil || e.Stats == nil {
		return
	}
	e.bump(&e.Stats.SubmatricesEnumerated, n)
}
