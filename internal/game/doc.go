// Package game supplies the concrete state collaborators behind the
// gamestate scheduler: boot, attract, the intro screens, gameplay, and the
// win/lose endings.
//
// Behavior is deterministic and headless. Each state counts ticks against a
// budget from Rules and requests its follow-up transition through the
// scheduler; the only shared mutable data is the Session, which lives on the
// same goroutine as the scheduler.
package game
