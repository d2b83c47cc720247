package game

import (
	"github.com/rx80/rusty-kong/pkg/gamestate"
	"github.com/rx80/rusty-kong/pkg/log"
)

// boot runs the power-on sequence: the session resets and, once the budget
// is spent, the machine drops into the attract loop.

func (g *Game) bootEnter() {
	g.session.reset(g.rules)
	g.logger.Info("power-on self test",
		log.Int("lives", g.session.Lives),
	)
}

func (g *Game) bootUpdate() {
	g.session.stateTicks++
	if g.session.stateTicks >= g.rules.BootTicks {
		g.sched.Go(gamestate.Attract)
	}
}

func (g *Game) bootLeave() {
	g.logger.Info("boot complete")
}
