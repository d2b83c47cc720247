package gamestate

import "testing"

// recorder tracks callback invocations for one state.
type recorder struct {
	enters  int
	updates int
	leaves  int
	order   *[]string
	name    string
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		Enter: func() {
			r.enters++
			*r.order = append(*r.order, r.name+".enter")
		},
		Update: func() {
			r.updates++
			*r.order = append(*r.order, r.name+".update")
		},
		Leave: func() {
			r.leaves++
			*r.order = append(*r.order, r.name+".leave")
		},
	}
}

// harness wires recorders for a handful of states into a fresh scheduler.
type harness struct {
	sched *Scheduler
	reg   *Registry
	order []string
	recs  map[StateID]*recorder
}

func newHarness(t *testing.T, initial StateID, states ...StateID) *harness {
	t.Helper()
	h := &harness{
		reg:  NewRegistry(),
		recs: map[StateID]*recorder{},
	}
	for _, id := range states {
		r := &recorder{name: id.String(), order: &h.order}
		h.recs[id] = r
		h.reg.Register(id, r.handlers())
	}
	h.sched = NewScheduler(h.reg, initial, nil)
	return h
}

func TestAdvance_AppliesQueuedTransitionOnNextTick(t *testing.T) {
	h := newHarness(t, Boot, Boot)

	h.sched.Init()
	if got := h.sched.Pending(); got != Boot {
		t.Fatalf("Pending() = %v, want %v", got, Boot)
	}
	if h.recs[Boot].enters != 0 {
		t.Fatalf("enter ran before Advance")
	}

	h.sched.Advance()

	if h.recs[Boot].enters != 1 {
		t.Errorf("enters = %d, want 1", h.recs[Boot].enters)
	}
	if h.recs[Boot].updates != 0 {
		t.Errorf("update ran on the transition tick")
	}
	if got := h.sched.Current(); got != Boot {
		t.Errorf("Current() = %v, want %v", got, Boot)
	}
	if got := h.sched.Previous(); got != None {
		t.Errorf("Previous() = %v, want %v", got, None)
	}
	if got := h.sched.Pending(); got != None {
		t.Errorf("Pending() = %v, want %v", got, None)
	}
}

func TestAdvance_AtMostOneTransitionPerTick(t *testing.T) {
	reg := NewRegistry()
	var sched *Scheduler

	attractEnters := 0
	// Boot's update asks for Attract; the transition must land on the
	// following tick, not this one.
	reg.Register(Boot, Handlers{
		Update: func() { sched.Go(Attract) },
	})
	reg.Register(Attract, Handlers{
		Enter: func() { attractEnters++ },
	})
	sched = NewScheduler(reg, Boot, nil)

	sched.Init()
	sched.Advance() // enter boot

	sched.Advance() // boot update requests attract
	if got := sched.Current(); got != Boot {
		t.Fatalf("transition applied on the same tick as the request")
	}
	if attractEnters != 0 {
		t.Fatalf("enter(attract) ran on the requesting tick")
	}

	sched.Advance()
	if got := sched.Current(); got != Attract {
		t.Errorf("Current() = %v, want %v", got, Attract)
	}
	if attractEnters != 1 {
		t.Errorf("enters(attract) = %d, want 1", attractEnters)
	}
}

func TestAdvance_TransitionRequestedDuringEnterWaitsOneTick(t *testing.T) {
	reg := NewRegistry()
	order := []string{}

	var sched *Scheduler
	reg.Register(Boot, Handlers{
		Enter: func() {
			order = append(order, "boot.enter")
			sched.Go(Attract)
		},
		Update: func() { order = append(order, "boot.update") },
		Leave:  func() { order = append(order, "boot.leave") },
	})
	reg.Register(Attract, Handlers{
		Enter: func() { order = append(order, "attract.enter") },
	})
	sched = NewScheduler(reg, Boot, nil)

	sched.Init()
	sched.Advance() // enter boot, queues attract
	if got := sched.Current(); got != Boot {
		t.Fatalf("Current() = %v, want %v", got, Boot)
	}

	sched.Advance() // applies the queued transition; no boot update runs
	want := []string{"boot.enter", "boot.leave", "attract.enter"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestAdvance_MutualExclusivity(t *testing.T) {
	h := newHarness(t, Boot, Boot, Attract)
	h.sched.Init()

	// Transition tick: leave+enter only.
	h.sched.Advance()
	if h.recs[Boot].updates != 0 {
		t.Errorf("update ran during a transition tick")
	}

	// Steady tick: update only.
	h.sched.Advance()
	if h.recs[Boot].updates != 1 {
		t.Errorf("updates = %d, want 1", h.recs[Boot].updates)
	}
	if h.recs[Boot].enters != 1 || h.recs[Boot].leaves != 0 {
		t.Errorf("enter/leave ran during a steady tick")
	}
}

func TestAdvance_OverwritesPendingTarget(t *testing.T) {
	h := newHarness(t, Boot, Boot, Attract, GamePlay)

	h.sched.Go(Attract)
	h.sched.Go(GamePlay)
	h.sched.Advance()

	if h.recs[Attract].enters != 0 {
		t.Errorf("overwritten target still entered")
	}
	if h.recs[GamePlay].enters != 1 {
		t.Errorf("enters(game_play) = %d, want 1", h.recs[GamePlay].enters)
	}
}

func TestFirstUpdateFlag_FlipsOnFirstSteadyTick(t *testing.T) {
	h := newHarness(t, Boot, Boot)
	h.sched.Init()
	h.sched.Advance() // enter

	if !h.reg.firstUpdate[Boot] {
		t.Fatalf("first-update flag cleared before any update ran")
	}
	h.sched.Advance() // first update
	if h.reg.firstUpdate[Boot] {
		t.Errorf("first-update flag still set after the first update")
	}
	h.sched.Advance() // second update
	h.sched.Advance() // third update
	if h.reg.firstUpdate[Boot] {
		t.Errorf("first-update flag re-armed without a transition")
	}
	if h.recs[Boot].updates != 3 {
		t.Errorf("updates = %d, want 3 (flag must not gate the callback)", h.recs[Boot].updates)
	}
}

func TestFirstUpdateFlag_ResetOnReEntry(t *testing.T) {
	h := newHarness(t, Attract, Attract, GamePlay)

	h.sched.Init()
	h.sched.Advance() // enter attract
	h.sched.Advance() // attract update clears its flag

	// attract -> game_play -> attract
	h.sched.Go(GamePlay)
	h.sched.Advance()
	h.sched.Go(Attract)
	h.sched.Advance()

	if !h.reg.firstUpdate[Attract] {
		t.Fatalf("first-update flag not re-armed after re-entry")
	}
	h.sched.Advance()
	if h.reg.firstUpdate[Attract] {
		t.Errorf("first-update flag still set after post-re-entry update")
	}
}

func TestAdvance_SentinelSafety(t *testing.T) {
	h := newHarness(t, Boot, Boot, Attract)

	// No Init, no request: ticks run the sentinel's no-op update and must
	// not touch any registered state.
	h.sched.Advance()
	h.sched.Advance()

	for id, r := range h.recs {
		if r.enters != 0 || r.updates != 0 || r.leaves != 0 {
			t.Errorf("%v callbacks ran before any transition was requested", id)
		}
	}
	if got := h.sched.Current(); got != None {
		t.Errorf("Current() = %v, want %v", got, None)
	}
}

func TestAdvance_FirstTransitionLeavesSentinelQuietly(t *testing.T) {
	h := newHarness(t, Boot, Boot)
	h.sched.Init()
	h.sched.Advance()

	if got := h.sched.Previous(); got != None {
		t.Errorf("Previous() = %v, want %v", got, None)
	}
	if h.recs[Boot].leaves != 0 {
		t.Errorf("leave ran for a state that was never entered")
	}
}

func TestAdvance_SelfTransition(t *testing.T) {
	h := newHarness(t, GamePlay, GamePlay)
	h.sched.Init()
	h.sched.Advance() // enter
	h.sched.Advance() // update clears first-update flag

	h.sched.Go(GamePlay)
	h.sched.Advance()

	if h.recs[GamePlay].leaves != 1 || h.recs[GamePlay].enters != 2 {
		t.Errorf("self transition: leaves = %d enters = %d, want 1 and 2",
			h.recs[GamePlay].leaves, h.recs[GamePlay].enters)
	}
	if got := h.sched.Previous(); got != GamePlay {
		t.Errorf("Previous() = %v, want %v", got, GamePlay)
	}
	if !h.reg.firstUpdate[GamePlay] {
		t.Errorf("first-update flag not re-armed by self transition")
	}
}

// TestScenario_BootToAttract runs the full scenario: init, boot entry, three
// steady ticks, then an update-requested transition to attract.
func TestScenario_BootToAttract(t *testing.T) {
	reg := NewRegistry()
	var sched *Scheduler

	bootUpdates := 0
	attractEntered := false
	bootLeft := false
	leaveBeforeEnter := false

	reg.Register(Boot, Handlers{
		Update: func() { bootUpdates++ },
		Leave:  func() { bootLeft = true },
	})
	reg.Register(Attract, Handlers{
		Enter: func() {
			attractEntered = true
			leaveBeforeEnter = bootLeft
		},
	})
	sched = NewScheduler(reg, Boot, nil)

	sched.Init()
	sched.Advance()
	if sched.Current() != Boot || sched.Previous() != None {
		t.Fatalf("after init tick: current=%v previous=%v", sched.Current(), sched.Previous())
	}

	flags := []bool{}
	for i := 0; i < 3; i++ {
		flags = append(flags, reg.firstUpdate[Boot])
		sched.Advance()
	}
	if bootUpdates != 3 {
		t.Errorf("boot updates = %d, want 3", bootUpdates)
	}
	if !flags[0] || flags[1] || flags[2] {
		t.Errorf("first-update flags before each tick = %v, want [true false false]", flags)
	}

	sched.Go(Attract)
	sched.Advance()
	if !attractEntered || !bootLeft {
		t.Fatalf("transition callbacks missing: entered=%v left=%v", attractEntered, bootLeft)
	}
	if !leaveBeforeEnter {
		t.Errorf("enter(attract) ran before leave(boot)")
	}
	if sched.Current() != Attract || sched.Previous() != Boot || sched.Pending() != None {
		t.Errorf("after transition: current=%v previous=%v pending=%v",
			sched.Current(), sched.Previous(), sched.Pending())
	}
}
