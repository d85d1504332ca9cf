package taskgroup

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Policy controls how a Group reacts to a failing task.
type Policy int

const (
	// FailFast cancels every sibling task as soon as one task returns
	// a non-nil error.
	FailFast Policy = iota
	// Supervisor lets siblings run to completion; Wait still reports
	// the first error.
	Supervisor
)

// Observer receives lifecycle callbacks from a Group. All methods may
// be called concurrently.
type Observer interface {
	GroupCreated(ctx context.Context)
	GroupCancelled(ctx context.Context, cause error)
	GroupWaited(ctx context.Context, wait time.Duration)
	TaskStarted(ctx context.Context)
	TaskDone(ctx context.Context, dur time.Duration, err error, panicked bool)
}

// Option configures a Group.
type Option func(*config)

type config struct {
	recoverPanics bool
	observer      Observer
	limit         int
}

func defaultConfig() config { return config{recoverPanics: true} }

// WithPanicRecovery controls whether a panicking task is converted to
// an error (the default) or allowed to crash the process.
func WithPanicRecovery(v bool) Option { return func(c *config) { c.recoverPanics = v } }

// WithObserver attaches an Observer to the group.
func WithObserver(obs Observer) Option { return func(c *config) { c.observer = obs } }

// WithLimit bounds the number of tasks running at once. Zero or a
// negative value means unbounded.
func WithLimit(n int) Option { return func(c *config) { c.limit = n } }

// Group owns a set of goroutines, joins them in Wait, and propagates
// cancellation and the first error according to its Policy.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
	policy Policy
	wg     sync.WaitGroup

	mu        sync.Mutex
	firstErr  error
	cancelled bool

	cfg config
	obs Observer
	sem *semaphore
}

// New creates a Group whose tasks derive their context from parent.
func New(parent context.Context, policy Policy, opts ...Option) *Group {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	g := &Group{ctx: ctx, cancel: cancel, policy: policy, cfg: defaultConfig()}
	for _, opt := range opts {
		opt(&g.cfg)
	}
	g.obs = g.cfg.observer
	if g.cfg.limit > 0 {
		g.sem = newSemaphore(g.cfg.limit)
	}
	if g.obs != nil {
		g.obs.GroupCreated(ctx)
	}
	return g
}

// Context returns the context shared by all tasks in the group.
func (g *Group) Context() context.Context { return g.ctx }

// Go starts fn in its own goroutine. A non-nil return value is treated
// as a task failure under the group's policy.
func (g *Group) Go(fn func(ctx context.Context) error) {
	if fn == nil {
		return
	}
	g.wg.Add(1)
	go g.run(fn)
}

func (g *Group) run(fn func(ctx context.Context) error) {
	defer g.wg.Done()
	if g.sem != nil {
		if err := g.sem.acquire(g.ctx); err != nil {
			g.fail(err)
			return
		}
		defer g.sem.release()
	}
	defer func() {
		if r := recover(); r != nil {
			if !g.cfg.recoverPanics {
				if g.obs != nil {
					g.obs.TaskDone(g.ctx, 0, nil, true)
				}
				panic(r)
			}
			err := fmt.Errorf("task panicked: %v", r)
			g.fail(err)
			if g.obs != nil {
				g.obs.TaskDone(g.ctx, 0, err, true)
			}
		}
	}()

	var start time.Time
	if g.obs != nil {
		start = time.Now()
		g.obs.TaskStarted(g.ctx)
	}
	err := fn(g.ctx)
	if err != nil {
		g.fail(err)
	}
	if g.obs != nil {
		g.obs.TaskDone(g.ctx, time.Since(start), err, false)
	}
}

// Cancel cancels the group. The first non-nil err passed to Cancel or
// returned by a task becomes the error reported by Wait. Cancel is
// idempotent.
func (g *Group) Cancel(err error) {
	g.mu.Lock()
	wasCancelled := g.cancelled
	g.cancelled = true
	if g.firstErr == nil && err != nil {
		g.firstErr = err
	}
	cause := g.firstErr
	g.mu.Unlock()

	g.cancel()
	if !wasCancelled && g.obs != nil {
		g.obs.GroupCancelled(g.ctx, cause)
	}
}

// Wait blocks until every task started with Go has returned, then
// reports the first error seen, if any. Wait may be called more than
// once; subsequent calls return the same error.
func (g *Group) Wait() error {
	var start time.Time
	if g.obs != nil {
		start = time.Now()
	}
	g.wg.Wait()
	if g.obs != nil {
		g.obs.GroupWaited(g.ctx, time.Since(start))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.firstErr
}

func (g *Group) fail(err error) {
	if err == nil {
		return
	}
	g.mu.Lock()
	if g.firstErr == nil {
		g.firstErr = err
	}
	shouldCancel := g.policy == FailFast
	cause := g.firstErr
	g.mu.Unlock()
	if shouldCancel {
		g.Cancel(cause)
	}
}

// Child creates a nested Group whose context derives from g, so
// cancelling the parent cancels the child. Options default to the
// parent's configuration.
func (g *Group) Child(policy Policy, opts ...Option) *Group {
	cfg := g.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	ctx, cancel := context.WithCancel(g.ctx)
	child := &Group{ctx: ctx, cancel: cancel, policy: policy, cfg: cfg, obs: cfg.observer}
	if cfg.limit > 0 {
		child.sem = newSemaphore(cfg.limit)
	}
	if child.obs != nil {
		child.obs.GroupCreated(ctx)
	}
	return child
}
