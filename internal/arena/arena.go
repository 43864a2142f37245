// Package arena pits two teams against each other across repeated battles.
package arena

import (
	"github.com/lawnchairsociety/herobattle/internal/logger"
	"github.com/lawnchairsociety/herobattle/internal/team"
)

// Arena holds the two teams and counts the battles fought between them.
type Arena struct {
	teamOne *team.Team
	teamTwo *team.Team
	opts    team.BattleOptions
	battles int
}

// HeroStats is a plain snapshot of one hero for reporting.
type HeroStats struct {
	Name          string
	CurrentHealth int
	MaxHealth     int
	Kills         int
	Deaths        int
	Alive         bool
}

// TeamStats is a plain snapshot of one team for reporting.
type TeamStats struct {
	Name      string
	KDR       float64
	Kills     int
	Deaths    int
	Heroes    []HeroStats
	Survivors []string
}

// Stats is everything a reporter needs after a battle.
type Stats struct {
	Battles int
	TeamOne TeamStats
	TeamTwo TeamStats
}

// New creates an arena for two fully built teams.
func New(teamOne, teamTwo *team.Team, opts team.BattleOptions) *Arena {
	return &Arena{teamOne: teamOne, teamTwo: teamTwo, opts: opts}
}

func (a *Arena) TeamOne() *team.Team { return a.teamOne }
func (a *Arena) TeamTwo() *team.Team { return a.teamTwo }
func (a *Arena) Battles() int        { return a.battles }

// TeamBattle runs team one against team two.
func (a *Arena) TeamBattle() team.BattleResult {
	a.battles++
	result := a.teamOne.Battle(a.teamTwo, a.opts)

	winner := "draw"
	if result.Winner != nil {
		winner = result.Winner.Name()
	}
	logger.Always("Arena battle finished",
		"battle", a.battles,
		"winner", winner,
		"duels", result.Duels,
		"capped", result.Capped)

	return result
}

// Revive brings both teams back to full health for another battle.
func (a *Arena) Revive() {
	a.teamOne.ReviveHeroes()
	a.teamTwo.ReviveHeroes()
}

// Snapshot captures the current tallies and health of both teams.
func (a *Arena) Snapshot() Stats {
	return Stats{
		Battles: a.battles,
		TeamOne: snapshotTeam(a.teamOne),
		TeamTwo: snapshotTeam(a.teamTwo),
	}
}

func snapshotTeam(t *team.Team) TeamStats {
	ts := TeamStats{
		Name:   t.Name(),
		KDR:    t.Stats(),
		Kills:  t.TotalKills(),
		Deaths: t.TotalDeaths(),
	}
	for _, h := range t.Heroes() {
		ts.Heroes = append(ts.Heroes, HeroStats{
			Name:          h.Name(),
			CurrentHealth: h.CurrentHealth(),
			MaxHealth:     h.StartingHealth(),
			Kills:         h.Kills(),
			Deaths:        h.Deaths(),
			Alive:         h.IsAlive(),
		})
	}
	for _, h := range t.SurvivingHeroes() {
		ts.Survivors = append(ts.Survivors, h.Name())
	}
	return ts
}
