package game

// Rules holds the tick budgets and scoring parameters the states play by.
// All counts are in ticks of the host loop.
type Rules struct {
	// BootTicks is how long the power-on sequence runs.
	BootTicks int
	// AttractTicks is how long the attract loop runs before a credit is
	// simulated.
	AttractTicks int
	// IntroTicks is the length of the long introduction cutscene.
	IntroTicks int
	// HowHighTicks is the length of the "how high can you get" banner.
	HowHighTicks int
	// StageTicks is how long the player must survive to clear a stage.
	StageTicks int
	// BonusStart is the bonus counter value at stage start.
	BonusStart int
	// BonusDecayTicks is the interval at which the bonus drops by 100.
	BonusDecayTicks int
	// DeathTicks is the length of the death animation.
	DeathTicks int
	// WinTicks is the length of the stage-clear animation.
	WinTicks int
	// RetreatTicks is the length of the ending sequence.
	RetreatTicks int
	// Lives is the number of lives at game start.
	Lives int
	// FinalStage is the stage whose clear triggers the ending.
	FinalStage int
}

// Session is the per-playthrough bookkeeping shared by the states. It is
// confined to the goroutine that drives the scheduler.
type Session struct {
	// Lives remaining. Decremented on entry to player_dies.
	Lives int
	// Stage is 1-based; the how_high banner shows Stage*25 meters.
	Stage int
	// Score accumulates banked bonus.
	Score int
	// Bonus counts down during game_play; reaching zero kills the player.
	Bonus int

	// stateTicks counts ticks since the current state was entered. Each
	// state's enter callback resets it.
	stateTicks int
}

// reset puts the session back to game-start values.
func (s *Session) reset(r Rules) {
	s.Lives = r.Lives
	s.Stage = 1
	s.Score = 0
	s.Bonus = 0
	s.stateTicks = 0
}

// height returns the climb height in meters for the current stage.
func (s *Session) height() int {
	return s.Stage * 25
}
