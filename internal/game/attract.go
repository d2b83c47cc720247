package game

import (
	"github.com/rx80/rusty-kong/pkg/gamestate"
	"github.com/rx80/rusty-kong/pkg/log"
)

// attract cycles the demo until a credit arrives. Headless builds simulate
// the credit after the attract budget elapses.

func (g *Game) attractEnter() {
	g.session.stateTicks = 0
	g.logger.Info("attract loop",
		log.Int("high_score", g.session.Score),
	)
}

func (g *Game) attractUpdate() {
	g.session.stateTicks++
	if g.session.stateTicks >= g.rules.AttractTicks {
		g.session.reset(g.rules)
		g.sched.Go(gamestate.LongIntro)
	}
}

func (g *Game) attractLeave() {
	g.logger.Info("credit inserted")
}
