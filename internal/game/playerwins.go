package game

import (
	"github.com/rx80/rusty-kong/pkg/gamestate"
	"github.com/rx80/rusty-kong/pkg/log"
)

// player_wins banks the remaining bonus, then either rolls the ending or
// advances to the next stage.

func (g *Game) playerWinsEnter() {
	g.session.stateTicks = 0
	g.session.Score += g.session.Bonus
	g.session.Bonus = 0
	g.logger.Info("stage clear",
		log.Int("stage", g.session.Stage),
		log.Int("score", g.session.Score),
	)
}

func (g *Game) playerWinsUpdate() {
	g.session.stateTicks++
	if g.session.stateTicks < g.rules.WinTicks {
		return
	}
	if g.session.Stage >= g.rules.FinalStage {
		g.sched.Go(gamestate.KongRetreats)
		return
	}
	g.session.Stage++
	g.sched.Go(gamestate.HowHigh)
}
