package game

import (
	"github.com/rx80/rusty-kong/pkg/gamestate"
	"github.com/rx80/rusty-kong/pkg/log"
)

// game_play is the stage itself. The bonus counter drops 100 every
// BonusDecayTicks; surviving the stage budget wins, an exhausted bonus
// kills.

func (g *Game) gamePlayEnter() {
	g.session.stateTicks = 0
	g.session.Bonus = g.rules.BonusStart
	g.logger.Info("stage start",
		log.Int("stage", g.session.Stage),
		log.Int("bonus", g.session.Bonus),
		log.Int("lives", g.session.Lives),
	)
}

func (g *Game) gamePlayUpdate() {
	g.session.stateTicks++

	if g.session.stateTicks%g.rules.BonusDecayTicks == 0 {
		g.session.Bonus -= 100
		if g.session.Bonus <= 0 {
			g.session.Bonus = 0
			g.sched.Go(gamestate.PlayerDies)
			return
		}
	}

	if g.session.stateTicks >= g.rules.StageTicks {
		g.sched.Go(gamestate.PlayerWins)
	}
}

func (g *Game) gamePlayLeave() {
	g.logger.Info("stage over",
		log.Int("score", g.session.Score),
		log.Int("bonus", g.session.Bonus),
	)
}
