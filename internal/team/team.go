// Package team groups heroes and runs team-against-team battles.
package team

import (
	"github.com/lawnchairsociety/herobattle/internal/dice"
	"github.com/lawnchairsociety/herobattle/internal/hero"
)

// Team is a named, ordered group of heroes. Duplicate names are allowed.
type Team struct {
	name   string
	heroes []*hero.Hero
}

// New creates an empty team.
func New(name string) *Team {
	return &Team{name: name}
}

func (t *Team) Name() string { return t.name }
func (t *Team) Size() int    { return len(t.heroes) }

// Heroes returns the members in insertion order.
func (t *Team) Heroes() []*hero.Hero {
	out := make([]*hero.Hero, len(t.heroes))
	copy(out, t.heroes)
	return out
}

// AddHero appends a hero to the team.
func (t *Team) AddHero(h *hero.Hero) {
	t.heroes = append(t.heroes, h)
}

// RemoveHero removes every member named name. It always reports true,
// whether or not anything matched.
func (t *Team) RemoveHero(name string) bool {
	kept := t.heroes[:0]
	for _, h := range t.heroes {
		if h.Name() != name {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(t.heroes); i++ {
		t.heroes[i] = nil
	}
	t.heroes = kept
	return true
}

// ReviveHeroes restores every member to starting health.
func (t *Team) ReviveHeroes() {
	for _, h := range t.heroes {
		h.Revive()
	}
}

// TotalKills sums the kill tally across the team.
func (t *Team) TotalKills() int {
	total := 0
	for _, h := range t.heroes {
		total += h.Kills()
	}
	return total
}

// TotalDeaths sums the death tally across the team.
func (t *Team) TotalDeaths() int {
	total := 0
	for _, h := range t.heroes {
		total += h.Deaths()
	}
	return total
}

// Stats returns the team kill/death ratio. With no deaths the ratio is the
// raw kill count.
func (t *Team) Stats() float64 {
	kills := t.TotalKills()
	deaths := t.TotalDeaths()
	if deaths == 0 {
		return float64(kills)
	}
	return float64(kills) / float64(deaths)
}

// SurvivingHeroes returns the members still standing.
func (t *Team) SurvivingHeroes() []*hero.Hero {
	var alive []*hero.Hero
	for _, h := range t.heroes {
		if h.IsAlive() {
			alive = append(alive, h)
		}
	}
	return alive
}

func (t *Team) canFight() bool {
	for _, h := range t.heroes {
		if h.HasAbilities() {
			return true
		}
	}
	return false
}

func (t *Team) pick(src dice.Source) *hero.Hero {
	return t.heroes[src.Intn(len(t.heroes))]
}
