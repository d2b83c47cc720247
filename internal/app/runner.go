// Package app hosts the main loop that drives the game's state machine.
package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rx80/rusty-kong/pkg/gamestate"
	"github.com/rx80/rusty-kong/pkg/log"
)

// Runner owns the ticker loop. It calls Init once and then Advance exactly
// once per tick until the context is canceled or the optional tick budget is
// exhausted. The scheduler is only ever touched from the goroutine running
// Run; the interval is the one knob other goroutines may turn.
type Runner struct {
	sched    *gamestate.Scheduler
	interval atomic.Int64 // nanoseconds
	maxTicks uint64       // 0 = run until canceled
	logger   log.Logger
}

// NewRunner creates a runner ticking at interval. maxTicks of zero means
// run until the context is canceled.
func NewRunner(sched *gamestate.Scheduler, interval time.Duration, maxTicks uint64, logger log.Logger) (*Runner, error) {
	if sched == nil {
		return nil, fmt.Errorf("scheduler is required")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive")
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	r := &Runner{
		sched:    sched,
		maxTicks: maxTicks,
		logger:   logger,
	}
	r.interval.Store(int64(interval))
	return r, nil
}

// SetInterval changes the tick interval. Safe to call from any goroutine;
// the loop picks it up on its next tick.
func (r *Runner) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	r.interval.Store(int64(d))
}

// Run executes the main loop. It returns nil when the tick budget is
// exhausted and ctx.Err() when canceled.
func (r *Runner) Run(ctx context.Context) error {
	interval := time.Duration(r.interval.Load())
	r.logger.Info("game loop starting",
		log.Duration("tick", interval),
		log.Uint64("max_ticks", r.maxTicks),
	)

	r.sched.Init()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var ticks uint64
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("game loop stopping",
				log.Uint64("ticks", ticks),
			)
			return ctx.Err()

		case <-ticker.C:
			r.sched.Advance()
			ticks++
			if r.maxTicks > 0 && ticks >= r.maxTicks {
				r.logger.Info("tick budget exhausted",
					log.Uint64("ticks", ticks),
				)
				return nil
			}

			if next := time.Duration(r.interval.Load()); next != interval {
				interval = next
				ticker.Reset(interval)
				r.logger.Info("tick interval changed",
					log.Duration("tick", interval),
				)
			}
		}
	}
}
