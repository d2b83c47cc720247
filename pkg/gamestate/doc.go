// Package gamestate implements the deterministic state machine that drives
// the game's top-level control flow.
//
// The package has two cooperating pieces: a Registry holding the fixed
// enter/update/leave callback table for every StateID, and a Scheduler that
// owns the previous/current/next state slots and is advanced once per tick
// by the host loop.
//
// # Transition model
//
// A state requests a transition by calling Scheduler.Go, typically from its
// own update callback. The request is only recorded; it is applied at the
// start of the next Advance call. This guarantees that leave and enter never
// run nested inside an update, and that at most one transition is consumed
// per tick. Any state may request a transition to any other state, including
// itself; the scheduler imposes no legality graph.
//
// # Concurrency
//
// The scheduler is not safe for concurrent use. Advance and Go must be
// called from the single goroutine that drives the game loop.
package gamestate
