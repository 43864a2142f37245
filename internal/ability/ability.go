// Package ability defines the offensive and defensive capabilities a hero
// carries into a fight.
package ability

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lawnchairsociety/herobattle/internal/dice"
)

// ErrUnknownKind is returned by New for a kind it does not recognize.
var ErrUnknownKind = errors.New("unknown ability kind")

// Kind identifies an offensive capability variant.
type Kind string

const (
	KindAbility Kind = "ability"
	KindWeapon  Kind = "weapon"
)

// Ability is an offensive capability. Callers roll damage through Attack
// without knowing which variant they hold.
type Ability interface {
	Name() string
	MaxDamage() int
	Kind() Kind
	// Attack returns a random damage value for one strike.
	Attack(src dice.Source) int
}

// Basic is a plain ability: damage is uniform in [0, max].
type Basic struct {
	name      string
	maxDamage int
}

// NewAbility creates a basic ability.
func NewAbility(name string, maxDamage int) *Basic {
	return &Basic{name: name, maxDamage: maxDamage}
}

func (a *Basic) Name() string   { return a.name }
func (a *Basic) MaxDamage() int { return a.maxDamage }
func (a *Basic) Kind() Kind     { return KindAbility }

// Attack returns a value between 0 and the max damage.
func (a *Basic) Attack(src dice.Source) int {
	return dice.Between(src, 0, a.maxDamage)
}

// Weapon is a more reliable damage source: damage is uniform in
// [max/2, max].
type Weapon struct {
	name      string
	maxDamage int
}

// NewWeapon creates a weapon.
func NewWeapon(name string, maxDamage int) *Weapon {
	return &Weapon{name: name, maxDamage: maxDamage}
}

func (w *Weapon) Name() string   { return w.name }
func (w *Weapon) MaxDamage() int { return w.maxDamage }
func (w *Weapon) Kind() Kind     { return KindWeapon }

// Attack returns a value between half and the full max damage.
func (w *Weapon) Attack(src dice.Source) int {
	return dice.Between(src, w.maxDamage/2, w.maxDamage)
}

// New creates an offensive capability of the given kind.
func New(kind Kind, name string, maxDamage int) (Ability, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case KindAbility, "":
		return NewAbility(name, maxDamage), nil
	case KindWeapon:
		return NewWeapon(name, maxDamage), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Armor is a defensive capability.
type Armor struct {
	name     string
	maxBlock int
}

// NewArmor creates an armor piece.
func NewArmor(name string, maxBlock int) *Armor {
	return &Armor{name: name, maxBlock: maxBlock}
}

func (a *Armor) Name() string  { return a.name }
func (a *Armor) MaxBlock() int { return a.maxBlock }

// Block returns a value between 0 and the max block.
func (a *Armor) Block(src dice.Source) int {
	return dice.Between(src, 0, a.maxBlock)
}
