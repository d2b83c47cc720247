package game

import (
	"github.com/rx80/rusty-kong/pkg/gamestate"
	"github.com/rx80/rusty-kong/pkg/log"
)

// kong_retreats is the ending: kong gives up, the machine rolls credits and
// returns to the attract loop.

func (g *Game) kongRetreatsEnter() {
	g.session.stateTicks = 0
	g.logger.Info("kong retreats",
		log.Int("final_score", g.session.Score),
	)
}

func (g *Game) kongRetreatsUpdate() {
	g.session.stateTicks++
	if g.session.stateTicks >= g.rules.RetreatTicks {
		g.session.Stage = 1
		g.sched.Go(gamestate.Attract)
	}
}
