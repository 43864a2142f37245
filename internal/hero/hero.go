// Package hero implements the combatant that teams field in the arena.
package hero

import (
	"github.com/lawnchairsociety/herobattle/internal/ability"
	"github.com/lawnchairsociety/herobattle/internal/dice"
)

// DefaultStartingHealth is used when a roster does not specify health.
const DefaultStartingHealth = 100

// Hero holds health, capabilities and a running kill/death tally.
// Health is never clamped at zero; a hero at or below zero is defeated.
type Hero struct {
	name           string
	startingHealth int
	currentHealth  int
	abilities      []ability.Ability
	armors         []*ability.Armor
	kills          int
	deaths         int
	src            dice.Source
}

// New creates a hero at full health drawing from the default random source.
func New(name string, startingHealth int) *Hero {
	return &Hero{
		name:           name,
		startingHealth: startingHealth,
		currentHealth:  startingHealth,
		src:            dice.Default(),
	}
}

// SetSource replaces the random source used for this hero's rolls.
func (h *Hero) SetSource(src dice.Source) {
	h.src = dice.Or(src)
}

func (h *Hero) Name() string        { return h.name }
func (h *Hero) StartingHealth() int { return h.startingHealth }
func (h *Hero) CurrentHealth() int  { return h.currentHealth }
func (h *Hero) Kills() int          { return h.kills }
func (h *Hero) Deaths() int         { return h.deaths }

// Abilities returns a copy of the hero's offensive capabilities.
func (h *Hero) Abilities() []ability.Ability {
	out := make([]ability.Ability, len(h.abilities))
	copy(out, h.abilities)
	return out
}

// Armors returns a copy of the hero's defensive capabilities.
func (h *Hero) Armors() []*ability.Armor {
	out := make([]*ability.Armor, len(h.armors))
	copy(out, h.armors)
	return out
}

// AddAbility appends an offensive capability.
func (h *Hero) AddAbility(a ability.Ability) {
	h.abilities = append(h.abilities, a)
}

// AddWeapon appends a weapon. Weapons share the ability list.
func (h *Hero) AddWeapon(w *ability.Weapon) {
	h.abilities = append(h.abilities, w)
}

// AddArmor appends a defensive capability.
func (h *Hero) AddArmor(a *ability.Armor) {
	h.armors = append(h.armors, a)
}

// HasAbilities reports whether the hero can deal damage at all.
func (h *Hero) HasAbilities() bool {
	return len(h.abilities) > 0
}

// Attack returns the sum of one strike from every ability.
func (h *Hero) Attack() int {
	total := 0
	for _, a := range h.abilities {
		total += a.Attack(h.src)
	}
	return total
}

// Defend returns the sum of one block from every armor piece.
func (h *Hero) Defend() int {
	total := 0
	for _, a := range h.armors {
		total += a.Block(h.src)
	}
	return total
}

// TakeDamage reduces health by the damage left after a fresh defense roll
// and returns the amount actually applied.
func (h *Hero) TakeDamage(damage int) int {
	applied := damage - h.Defend()
	if applied < 0 {
		applied = 0
	}
	h.currentHealth -= applied
	return applied
}

// IsAlive returns true while health is above zero.
func (h *Hero) IsAlive() bool {
	return h.currentHealth > 0
}

// AddKill adds n kills to the tally.
func (h *Hero) AddKill(n int) {
	h.kills += n
}

// AddDeaths adds n deaths to the tally.
func (h *Hero) AddDeaths(n int) {
	h.deaths += n
}

// Revive restores health to the starting value. Tallies are kept.
func (h *Hero) Revive() {
	h.currentHealth = h.startingHealth
}
