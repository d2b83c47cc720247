package game

import (
	"fmt"

	"github.com/rx80/rusty-kong/pkg/gamestate"
	"github.com/rx80/rusty-kong/pkg/log"
)

// DefaultRules returns the stock arcade pacing at 60 ticks per second.
func DefaultRules() Rules {
	return Rules{
		BootTicks:       120,
		AttractTicks:    300,
		IntroTicks:      240,
		HowHighTicks:    90,
		StageTicks:      600,
		BonusStart:      5000,
		BonusDecayTicks: 30,
		DeathTicks:      150,
		WinTicks:        180,
		RetreatTicks:    240,
		Lives:           3,
		FinalStage:      4,
	}
}

// Validate checks the rules for values the states cannot work with.
func (r Rules) Validate() error {
	if r.BootTicks <= 0 || r.AttractTicks <= 0 || r.IntroTicks <= 0 ||
		r.HowHighTicks <= 0 || r.StageTicks <= 0 || r.DeathTicks <= 0 ||
		r.WinTicks <= 0 || r.RetreatTicks <= 0 {
		return fmt.Errorf("all tick budgets must be positive")
	}
	if r.BonusStart <= 0 {
		return fmt.Errorf("bonus start must be positive")
	}
	if r.BonusDecayTicks <= 0 {
		return fmt.Errorf("bonus decay interval must be positive")
	}
	if r.Lives <= 0 {
		return fmt.Errorf("lives must be positive")
	}
	if r.FinalStage <= 0 {
		return fmt.Errorf("final stage must be positive")
	}
	return nil
}

// Game binds the nine state collaborators to a scheduler.
type Game struct {
	rules   Rules
	session Session
	sched   *gamestate.Scheduler
	logger  log.Logger
}

// New builds the registry, registers every state's callback triple, and
// wires a scheduler whose initial state is Boot.
func New(rules Rules, logger log.Logger) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("game rules: %w", err)
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	g := &Game{rules: rules, logger: logger}

	reg := gamestate.NewRegistry()
	reg.Register(gamestate.Boot, gamestate.Handlers{
		Enter:  g.bootEnter,
		Update: g.bootUpdate,
		Leave:  g.bootLeave,
	})
	reg.Register(gamestate.Attract, gamestate.Handlers{
		Enter:  g.attractEnter,
		Update: g.attractUpdate,
		Leave:  g.attractLeave,
	})
	reg.Register(gamestate.LongIntro, gamestate.Handlers{
		Enter:  g.longIntroEnter,
		Update: g.longIntroUpdate,
	})
	reg.Register(gamestate.HowHigh, gamestate.Handlers{
		Enter:  g.howHighEnter,
		Update: g.howHighUpdate,
	})
	reg.Register(gamestate.GamePlay, gamestate.Handlers{
		Enter:  g.gamePlayEnter,
		Update: g.gamePlayUpdate,
		Leave:  g.gamePlayLeave,
	})
	reg.Register(gamestate.PlayerDies, gamestate.Handlers{
		Enter:  g.playerDiesEnter,
		Update: g.playerDiesUpdate,
	})
	reg.Register(gamestate.PlayerWins, gamestate.Handlers{
		Enter:  g.playerWinsEnter,
		Update: g.playerWinsUpdate,
	})
	reg.Register(gamestate.KongRetreats, gamestate.Handlers{
		Enter:  g.kongRetreatsEnter,
		Update: g.kongRetreatsUpdate,
	})

	g.sched = gamestate.NewScheduler(reg, gamestate.Boot, logger)
	return g, nil
}

// Scheduler returns the scheduler the host loop should drive.
func (g *Game) Scheduler() *gamestate.Scheduler {
	return g.sched
}

// Session returns a copy of the current session bookkeeping.
func (g *Game) Session() Session {
	return g.session
}
