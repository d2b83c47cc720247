package gamestate

import (
	"github.com/rx80/rusty-kong/pkg/log"
)

// Scheduler owns the previous/current/next state slots and applies
// transitions. It is created once, handed to the host loop, and advanced
// exactly once per tick. All fields start at None; nothing runs until Init
// queues the initial state and the next Advance applies it.
type Scheduler struct {
	registry *Registry
	logger   log.Logger

	initial  StateID
	previous StateID
	current  StateID
	next     StateID
}

// NewScheduler creates a scheduler over the given registry. The initial
// state is the one Init queues; for the real game that is Boot.
func NewScheduler(registry *Registry, initial StateID, logger log.Logger) *Scheduler {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Scheduler{
		registry: registry,
		logger:   logger,
		initial:  initial,
		previous: None,
		current:  None,
		next:     None,
	}
}

// Go requests a transition to target. The request overwrites any pending
// target and is applied at the start of the next Advance call; no callback
// runs here. Legal from inside enter, update, or leave, or from the host.
func (s *Scheduler) Go(target StateID) {
	s.next = target
}

// Init queues the designated initial state. Call it exactly once before the
// first Advance.
func (s *Scheduler) Init() {
	s.Go(s.initial)
}

// Advance executes one tick. If a transition is pending it is applied:
// leave runs on the old state, its first-update flag is re-armed, and enter
// runs on the new state. Otherwise the current state's update runs. The two
// paths are mutually exclusive within a single call, and clearing next
// before enter runs means a transition requested during enter or leave
// waits for the following tick.
func (s *Scheduler) Advance() {
	if s.next != None {
		s.previous = s.current

		prev := s.registry.lookup(s.previous)
		if s.previous != None {
			s.logger.Debug("state transition",
				log.String("from", s.previous.String()),
				log.String("callback", "leave"),
			)
		}
		prev.Leave()
		s.registry.resetFirstUpdate(s.previous)

		s.current = s.next
		s.next = None

		cur := s.registry.lookup(s.current)
		s.logger.Debug("state transition",
			log.String("from", s.previous.String()),
			log.String("to", s.current.String()),
			log.String("callback", "enter"),
		)
		cur.Enter()
		return
	}

	entry := s.registry.lookup(s.current)
	if s.registry.takeFirstUpdate(s.current) {
		// Only the first update after entry is logged to avoid per-tick
		// noise; the callback itself runs every tick regardless.
		s.logger.Debug("state update",
			log.String("state", s.current.String()),
			log.String("callback", "update"),
		)
	}
	entry.Update()
}

// Previous returns the last state that was exited, or None before the first
// transition.
func (s *Scheduler) Previous() StateID { return s.previous }

// Current returns the active state, or None before the first transition.
func (s *Scheduler) Current() StateID { return s.current }

// Pending returns the queued transition target, or None when no transition
// is pending.
func (s *Scheduler) Pending() StateID { return s.next }
