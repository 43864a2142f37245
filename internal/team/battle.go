package team

import (
	"github.com/lawnchairsociety/herobattle/internal/combat"
	"github.com/lawnchairsociety/herobattle/internal/dice"
	"github.com/lawnchairsociety/herobattle/internal/hero"
	"github.com/lawnchairsociety/herobattle/internal/logger"
)

// BattleOptions tunes a team battle.
type BattleOptions struct {
	// MaxDuels stops the battle after this many duels. 0 means no limit.
	MaxDuels int
	// Duel is forwarded to every duel.
	Duel combat.Options
	// Source picks the fighters. nil uses the process-wide source.
	Source dice.Source
	// OnDuel, when set, is called after every duel.
	OnDuel func(first, second *hero.Hero, result combat.Result)
}

// BattleResult is the outcome of a team battle.
type BattleResult struct {
	Winner *Team
	Draw   bool
	// Capped is set when the battle stopped at MaxDuels.
	Capped bool
	Duels  int
}

// Battle fights t against other until one side's kill tally covers the
// whole opposing team: the battle ends once a team's total kills exceed
// the opposing team's size minus one.
//
// Fighters are picked uniformly from each team's full membership, fallen
// heroes included. Tallies are cumulative across battles, so a replayed
// battle can end after its first duel. If both teams cross the line on the
// same duel, or if no hero on either side can deal damage, the battle is a
// draw.
func (t *Team) Battle(other *Team, opts BattleOptions) BattleResult {
	src := dice.Or(opts.Source)

	if t.Size() == 0 || other.Size() == 0 {
		logger.Warning("Battle skipped, empty team",
			"team", t.name, "size", t.Size(),
			"opponent", other.name, "opponent_size", other.Size())
		return BattleResult{Draw: true}
	}
	if !t.canFight() && !other.canFight() {
		logger.Info("Battle drawn, no abilities on either team", "team", t.name, "opponent", other.name)
		return BattleResult{Draw: true}
	}

	logger.Info("Battle started", "team", t.name, "opponent", other.name)

	duels := 0
	for {
		if opts.MaxDuels > 0 && duels >= opts.MaxDuels {
			logger.Warning("Battle stopped at duel cap", "team", t.name, "opponent", other.name, "duels", duels)
			return BattleResult{Draw: true, Capped: true, Duels: duels}
		}

		first := t.pick(src)
		second := other.pick(src)
		result := combat.Duel(first, second, opts.Duel)
		duels++
		if opts.OnDuel != nil {
			opts.OnDuel(first, second, result)
		}

		ours := t.TotalKills() > other.Size()-1
		theirs := other.TotalKills() > t.Size()-1
		switch {
		case ours && theirs:
			logger.Info("Battle drawn", "team", t.name, "opponent", other.name, "duels", duels)
			return BattleResult{Draw: true, Duels: duels}
		case ours:
			logger.Info("Battle won", "winner", t.name, "loser", other.name, "duels", duels)
			return BattleResult{Winner: t, Duels: duels}
		case theirs:
			logger.Info("Battle won", "winner", other.name, "loser", t.name, "duels", duels)
			return BattleResult{Winner: other, Duels: duels}
		}
	}
}
