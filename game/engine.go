// Package game implements the Fruit Catcher engine: items fall through three lanes,
// a basket catches them, and score drives level progression.
//
// The engine owns three loops (spawn, physics, countdown) scheduled on an
// engine.Scheduler. All state mutation happens on the scheduler thread; the
// public methods post work to it and may be called from any goroutine.
package game

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fruit-catcher/engine"
	"github.com/lixenwraith/fruit-catcher/parameter"
	"github.com/lixenwraith/fruit-catcher/status"
)

// Engine is the game-state machine
type Engine struct {
	sched   engine.Scheduler
	hooks   Hooks
	catalog Catalog
	rng     *rand.Rand
	logger  *log.Logger
	metrics *metrics

	// Scheduler-thread state
	state      state
	generation uint64 // Incremented per game; stale callbacks compare against it
	nextID     uint64
	spawnTimer engine.Timer
	clockTimer engine.Timer
	frameTimer engine.Timer

	// Last published snapshot, readable from any goroutine
	published atomic.Pointer[Snapshot]
}

// Option configures an Engine
type Option func(*Engine)

// WithRand sets the random source used for lanes and categories
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithCatalog replaces the default spawn table
func WithCatalog(c Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithLogger sets the lifecycle logger
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics records engine counters into reg
func WithMetrics(reg *status.Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.metrics = newMetrics(reg)
		}
	}
}

// WithSharedMetrics records counters into a registry other engines also write,
// leaving out the per-game score and level gauges
func WithSharedMetrics(reg *status.Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.metrics = newSharedMetrics(reg)
		}
	}
}

// New creates an idle engine bound to sched
func New(sched engine.Scheduler, hooks Hooks, opts ...Option) (*Engine, error) {
	if sched == nil {
		return nil, ErrNilScheduler
	}

	e := &Engine{
		sched:   sched,
		hooks:   hooks,
		catalog: DefaultCatalog(),
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.metrics == nil {
		e.metrics = newMetrics(status.NewRegistry())
	}
	if err := e.catalog.Validate(); err != nil {
		return nil, err
	}

	e.state = state{level: 1, basket: LaneCenter}
	initial := e.state.snapshot()
	e.published.Store(&initial)
	return e, nil
}

// Start begins a new game, replacing any game in progress
func (e *Engine) Start(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.sched.Post(func() {
		e.start(cfg)
	})
	return nil
}

// Stop ends the current game; a no-op when no game is active
func (e *Engine) Stop() {
	e.sched.Post(func() {
		e.stop(ReasonStopped)
	})
}

// SetBasketLane moves the basket by lane name, ignored while inactive
func (e *Engine) SetBasketLane(name string) error {
	lane, err := ParseLane(name)
	if err != nil {
		return err
	}
	e.SetLane(lane)
	return nil
}

// SetLane moves the basket, ignored while inactive or for an invalid lane
func (e *Engine) SetLane(lane Lane) {
	if !lane.Valid() {
		return
	}
	e.sched.Post(func() {
		if e.state.active {
			e.state.basket = lane
		}
	})
}

// Snapshot returns the last published state
func (e *Engine) Snapshot() Snapshot {
	return *e.published.Load()
}

// Active reports whether a game is running as of the last published state
func (e *Engine) Active() bool {
	return e.published.Load().Active
}

// live reports whether callbacks of game gen may still act
func (e *Engine) live(gen uint64) bool {
	return e.state.active && e.generation == gen
}

func (e *Engine) start(cfg Config) {
	if e.state.active {
		e.stop(ReasonRestarted)
	}

	e.generation++
	gen := e.generation
	e.nextID = 0
	e.state = state{
		level:     1,
		remaining: cfg.TimeLimit,
		unlimited: cfg.TimeLimit == 0,
		basket:    LaneCenter,
		active:    true,
		items:     make([]Item, 0, 16),
	}

	e.metrics.started.Add(1)
	e.metrics.score.Store(0)
	e.metrics.level.Store(1)
	if cfg.TimeLimit > 0 {
		e.logger.Printf("game %d started, limit %ds", gen, cfg.TimeLimit)
		e.clockTimer = e.sched.AfterFunc(parameter.CountdownInterval, func() {
			e.countdown(gen)
		})
	} else {
		e.logger.Printf("game %d started, unlimited", gen)
	}

	e.spawnLoop(gen)
	e.frameTimer = e.sched.NextFrame(func() {
		e.tick(gen)
	})
	e.publish()
}

// stop freezes state, cancels every loop and fires the end notification once
func (e *Engine) stop(reason EndReason) {
	if !e.state.active {
		return
	}
	e.state.active = false

	for _, t := range []engine.Timer{e.spawnTimer, e.clockTimer, e.frameTimer} {
		if t != nil {
			t.Stop()
		}
	}
	e.spawnTimer, e.clockTimer, e.frameTimer = nil, nil, nil

	// Readers see the frozen state; no OnStateUpdate after the end
	frozen := e.state.snapshot()
	e.published.Store(&frozen)

	end := GameEnd{Score: e.state.score, Level: e.state.level, Reason: reason}
	e.metrics.lastEnd.Store(string(reason))
	e.logger.Printf("game %d ended: %s, score %d, level %d", e.generation, reason, end.Score, end.Level)

	if e.hooks.OnGameEnd != nil {
		e.hooks.OnGameEnd(end)
	}
}

// publish stores and emits the current snapshot
func (e *Engine) publish() {
	snap := e.state.snapshot()
	e.published.Store(&snap)
	if e.hooks.OnStateUpdate != nil {
		e.hooks.OnStateUpdate(snap)
	}
}

// String describes the engine for logs
func (e *Engine) String() string {
	s := e.Snapshot()
	return fmt.Sprintf("engine{active=%t score=%d level=%d lane=%s items=%d}",
		s.Active, s.Score, s.Level, s.BasketLane, len(s.Items))
}
