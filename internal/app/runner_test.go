package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rx80/rusty-kong/pkg/gamestate"
)

func newTestScheduler(updates *int) *gamestate.Scheduler {
	reg := gamestate.NewRegistry()
	reg.Register(gamestate.Boot, gamestate.Handlers{
		Update: func() { *updates++ },
	})
	return gamestate.NewScheduler(reg, gamestate.Boot, nil)
}

func TestNewRunner_Validation(t *testing.T) {
	var updates int
	sched := newTestScheduler(&updates)

	if _, err := NewRunner(nil, time.Millisecond, 0, nil); err == nil {
		t.Errorf("NewRunner accepted nil scheduler")
	}
	if _, err := NewRunner(sched, 0, 0, nil); err == nil {
		t.Errorf("NewRunner accepted zero interval")
	}
	if _, err := NewRunner(sched, time.Millisecond, 0, nil); err != nil {
		t.Errorf("NewRunner rejected valid arguments: %v", err)
	}
}

func TestRunner_StopsAfterTickBudget(t *testing.T) {
	var updates int
	sched := newTestScheduler(&updates)

	r, err := NewRunner(sched, time.Millisecond, 5, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	// Tick 1 applies the queued boot transition; ticks 2-5 are updates.
	if updates != 4 {
		t.Errorf("updates = %d, want 4", updates)
	}
	if got := sched.Current(); got != gamestate.Boot {
		t.Errorf("Current() = %v, want %v", got, gamestate.Boot)
	}
}

func TestRunner_StopsOnCancel(t *testing.T) {
	var updates int
	sched := newTestScheduler(&updates)

	r, err := NewRunner(sched, time.Millisecond, 0, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestRunner_SetIntervalIgnoresNonPositive(t *testing.T) {
	var updates int
	sched := newTestScheduler(&updates)

	r, err := NewRunner(sched, 10*time.Millisecond, 0, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	r.SetInterval(0)
	if got := time.Duration(r.interval.Load()); got != 10*time.Millisecond {
		t.Errorf("interval = %v, want 10ms", got)
	}

	r.SetInterval(2 * time.Millisecond)
	if got := time.Duration(r.interval.Load()); got != 2*time.Millisecond {
		t.Errorf("interval = %v, want 2ms", got)
	}
}
