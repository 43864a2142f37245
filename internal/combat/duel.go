// Package combat resolves fights between two heroes.
package combat

import (
	"github.com/lawnchairsociety/herobattle/internal/hero"
	"github.com/lawnchairsociety/herobattle/internal/logger"
)

// State is the state of a duel.
type State int

const (
	StateOngoing State = iota
	StateWon
	StateDrawn
)

func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ongoing"
	case StateWon:
		return "won"
	case StateDrawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// Options tunes duel resolution.
type Options struct {
	// MaxRounds stops a duel after this many rounds. 0 means no limit.
	// A capped duel reports StateOngoing and records no tallies.
	MaxRounds int
}

// Result is the outcome of a single duel.
type Result struct {
	State State
	// Winner and Loser are set only for StateWon.
	Winner *hero.Hero
	Loser  *hero.Hero
	Rounds int
	// Simultaneous is set when both heroes fell in the same round.
	Simultaneous bool
}

// Duel fights a against b until one or both fall.
//
// Every round a strikes b, then b strikes a. b retaliates even when a's
// strike already dropped it, so both heroes can fall in the same round; that
// is scored as a draw in which each hero gains one kill and one death.
// If neither hero has any ability the duel is drawn at once with no damage.
func Duel(a, b *hero.Hero, opts Options) Result {
	if !a.HasAbilities() && !b.HasAbilities() {
		logger.Debug("Duel drawn, no abilities", "first", a.Name(), "second", b.Name())
		return Result{State: StateDrawn}
	}

	rounds := 0
	for a.IsAlive() && b.IsAlive() {
		if opts.MaxRounds > 0 && rounds >= opts.MaxRounds {
			logger.Warning("Duel stopped at round cap",
				"first", a.Name(),
				"second", b.Name(),
				"rounds", rounds)
			return Result{State: StateOngoing, Rounds: rounds}
		}
		rounds++
		b.TakeDamage(a.Attack())
		a.TakeDamage(b.Attack())
	}

	switch {
	case a.IsAlive():
		return won(a, b, rounds)
	case b.IsAlive():
		return won(b, a, rounds)
	default:
		a.AddKill(1)
		a.AddDeaths(1)
		b.AddKill(1)
		b.AddDeaths(1)
		logger.Debug("Duel drawn, both fell", "first", a.Name(), "second", b.Name(), "rounds", rounds)
		return Result{State: StateDrawn, Rounds: rounds, Simultaneous: true}
	}
}

func won(winner, loser *hero.Hero, rounds int) Result {
	winner.AddKill(1)
	loser.AddDeaths(1)
	logger.Debug("Hero won a battle", "winner", winner.Name(), "loser", loser.Name(), "rounds", rounds)
	return Result{State: StateWon, Winner: winner, Loser: loser, Rounds: rounds}
}
