package game

import "github.com/rx80/rusty-kong/pkg/gamestate"

// long_intro plays the opening cutscene: kong climbs the girders with the
// captive in tow.

func (g *Game) longIntroEnter() {
	g.session.stateTicks = 0
	g.logger.Info("long introduction")
}

func (g *Game) longIntroUpdate() {
	g.session.stateTicks++
	if g.session.stateTicks >= g.rules.IntroTicks {
		g.sched.Go(gamestate.HowHigh)
	}
}
