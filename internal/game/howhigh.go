package game

import (
	"github.com/rx80/rusty-kong/pkg/gamestate"
	"github.com/rx80/rusty-kong/pkg/log"
)

// how_high shows the climb-height banner between stages.

func (g *Game) howHighEnter() {
	g.session.stateTicks = 0
	g.logger.Info("how high can you get",
		log.Int("stage", g.session.Stage),
		log.Int("meters", g.session.height()),
	)
}

func (g *Game) howHighUpdate() {
	g.session.stateTicks++
	if g.session.stateTicks >= g.rules.HowHighTicks {
		g.sched.Go(gamestate.GamePlay)
	}
}
