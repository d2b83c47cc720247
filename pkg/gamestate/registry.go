package gamestate

// Handlers is the callback triple a state collaborator supplies. Callbacks
// take no arguments and return nothing; all effects are side effects on the
// collaborator's own data. Nil callbacks are replaced with a no-op at
// registration time so every entry is total.
type Handlers struct {
	// Enter runs once when the scheduler transitions into the state.
	Enter func()
	// Update runs once per tick while the state is resident, including the
	// first tick after entry.
	Update func()
	// Leave runs once when the scheduler transitions out of the state.
	Leave func()
}

func nop() {}

// Registry holds the fixed mapping from StateID to its callback triple,
// plus the per-state first-update flags.
//
// The callback table is structurally immutable once registration is done:
// Register must not be called after the first Advance. Only the firstUpdate
// flags mutate afterwards, and only from the scheduler.
type Registry struct {
	entries [stateCount]Handlers

	// firstUpdate marks whether update has yet to run since the most recent
	// enter. Owned by the scheduler; reset to true on every transition out
	// of the state so re-entry starts fresh. Diagnostic bookkeeping only.
	firstUpdate [stateCount]bool
}

// NewRegistry returns a registry with every entry set to the no-op triple
// and every first-update flag set. The None sentinel keeps its no-op entry
// for the machine's whole lifetime, which is what lets the scheduler treat
// "no previous state" as just another lookup.
func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.entries {
		r.entries[i] = Handlers{Enter: nop, Update: nop, Leave: nop}
		r.firstUpdate[i] = true
	}
	return r
}

// Register binds the callback triple for id, filling nil callbacks with the
// no-op. It must be called before the scheduler starts advancing.
func (r *Registry) Register(id StateID, h Handlers) {
	if h.Enter == nil {
		h.Enter = nop
	}
	if h.Update == nil {
		h.Update = nop
	}
	if h.Leave == nil {
		h.Leave = nop
	}
	r.entries[id] = h
}

// lookup returns the entry for id. The enumeration is closed, so id is in
// bounds by construction; there is no error path.
func (r *Registry) lookup(id StateID) *Handlers {
	return &r.entries[id]
}

// resetFirstUpdate re-arms the first-update flag for id.
func (r *Registry) resetFirstUpdate(id StateID) {
	r.firstUpdate[id] = true
}

// takeFirstUpdate reports whether this is the first update since entry into
// id, clearing the flag as a side effect.
func (r *Registry) takeFirstUpdate(id StateID) bool {
	if r.firstUpdate[id] {
		r.firstUpdate[id] = false
		return true
	}
	return false
}
