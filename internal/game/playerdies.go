package game

import (
	"github.com/rx80/rusty-kong/pkg/gamestate"
	"github.com/rx80/rusty-kong/pkg/log"
)

// player_dies plays the death animation, burns a life, and either retries
// the stage or falls back to the attract loop on game over.

func (g *Game) playerDiesEnter() {
	g.session.stateTicks = 0
	g.session.Lives--
	g.logger.Info("player dies",
		log.Int("lives", g.session.Lives),
	)
}

func (g *Game) playerDiesUpdate() {
	g.session.stateTicks++
	if g.session.stateTicks < g.rules.DeathTicks {
		return
	}
	if g.session.Lives > 0 {
		g.sched.Go(gamestate.HowHigh)
		return
	}
	g.logger.Info("game over",
		log.Int("score", g.session.Score),
	)
	g.sched.Go(gamestate.Attract)
}
