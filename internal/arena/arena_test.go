package arena

import (
	"testing"

	"github.com/lawnchairsociety/herobattle/internal/ability"
	"github.com/lawnchairsociety/herobattle/internal/dice"
	"github.com/lawnchairsociety/herobattle/internal/hero"
	"github.com/lawnchairsociety/herobattle/internal/team"
)

func newTeam(name string, abilityMax int, members ...string) *team.Team {
	t := team.New(name)
	for _, m := range members {
		h := hero.New(m, 100)
		h.SetSource(dice.Max{})
		h.AddAbility(ability.NewAbility("Strike", abilityMax))
		t.AddHero(h)
	}
	return t
}

func TestTeamBattleCountsBattles(t *testing.T) {
	a := New(newTeam("Team One", 300, "Strong"), newTeam("Team Two", 1, "Weak"), team.BattleOptions{})

	result := a.TeamBattle()
	if result.Winner != a.TeamOne() {
		t.Fatalf("winner = %v, want Team One", result.Winner)
	}
	a.Revive()
	a.TeamBattle()

	if a.Battles() != 2 {
		t.Errorf("Battles() = %d, want 2", a.Battles())
	}
}

func TestReviveRestoresBothTeams(t *testing.T) {
	a := New(newTeam("Team One", 300, "Strong"), newTeam("Team Two", 1, "Weak"), team.BattleOptions{})
	a.TeamBattle()

	a.Revive()

	for _, tm := range []*team.Team{a.TeamOne(), a.TeamTwo()} {
		for _, h := range tm.Heroes() {
			if h.CurrentHealth() != h.StartingHealth() {
				t.Errorf("%s health = %d after revive", h.Name(), h.CurrentHealth())
			}
		}
	}
}

func TestSnapshot(t *testing.T) {
	a := New(newTeam("Team One", 300, "Strong", "Backup"), newTeam("Team Two", 1, "Weak"), team.BattleOptions{
		Source: dice.NewScripted(0),
	})
	a.TeamBattle()

	stats := a.Snapshot()

	if stats.Battles != 1 {
		t.Errorf("Battles = %d, want 1", stats.Battles)
	}
	one := stats.TeamOne
	if one.Name != "Team One" || one.Kills != 1 || one.Deaths != 0 || one.KDR != 1 {
		t.Errorf("TeamOne = %+v", one)
	}
	if len(one.Heroes) != 2 || one.Heroes[0].Name != "Strong" || one.Heroes[0].CurrentHealth != 99 {
		t.Errorf("TeamOne heroes = %+v", one.Heroes)
	}
	if len(one.Survivors) != 2 {
		t.Errorf("TeamOne survivors = %v, want both", one.Survivors)
	}
	two := stats.TeamTwo
	if two.Deaths != 1 || two.KDR != 0 || len(two.Survivors) != 0 {
		t.Errorf("TeamTwo = %+v", two)
	}
	if two.Heroes[0].Alive {
		t.Error("Weak should be down")
	}
}
