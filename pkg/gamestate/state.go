package gamestate

// StateID identifies one phase of the game's top-level control flow.
//
// The enumeration is closed: the registry is sized to exactly these values
// and indexed by ordinal, so an out-of-range StateID cannot be constructed
// without deliberately casting.
type StateID int

const (
	// None is the sentinel meaning "no pending transition" or "not yet
	// initialized". Its registry entry is a no-op triple; it is never a
	// reachable gameplay state.
	None StateID = iota
	Boot
	Attract
	LongIntro
	HowHigh
	GamePlay
	PlayerDies
	PlayerWins
	KongRetreats
)

// stateCount is the cardinality of the StateID enumeration.
const stateCount = int(KongRetreats) + 1

// String returns the stable diagnostic name for the state.
func (s StateID) String() string {
	switch s {
	case None:
		return "state_nop"
	case Boot:
		return "boot"
	case Attract:
		return "attract"
	case LongIntro:
		return "long_intro"
	case HowHigh:
		return "how_high"
	case GamePlay:
		return "game_play"
	case PlayerDies:
		return "player_dies"
	case PlayerWins:
		return "player_wins"
	case KongRetreats:
		return "kong_retreats"
	default:
		return "unknown"
	}
}
