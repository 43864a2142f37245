// Package roster builds fully formed teams for the arena, either from a
// YAML roster file or by prompting a player.
package roster

import (
	"errors"
	"fmt"
	"os"

	"github.com/lawnchairsociety/herobattle/internal/ability"
	"github.com/lawnchairsociety/herobattle/internal/dice"
	"github.com/lawnchairsociety/herobattle/internal/hero"
	"github.com/lawnchairsociety/herobattle/internal/logger"
	"github.com/lawnchairsociety/herobattle/internal/team"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidStrength is returned for a negative max damage or block.
	ErrInvalidStrength = errors.New("strength must be non-negative")
	// ErrMissingName is returned for a team or hero without a name.
	ErrMissingName = errors.New("name is required")
	// ErrTeamCount is returned when the arena does not get exactly two teams.
	ErrTeamCount = errors.New("arena needs exactly two teams")
)

// CapabilityDefinition is an ability, weapon or armor entry in YAML format
type CapabilityDefinition struct {
	Name string `yaml:"name"`
	Max  int    `yaml:"max"`
	Kind string `yaml:"kind"` // abilities list only: "ability" (default) or "weapon"
}

// HeroDefinition represents a hero from the roster file
type HeroDefinition struct {
	Name      string                 `yaml:"name"`
	Health    int                    `yaml:"health"` // 0 = hero.DefaultStartingHealth
	Abilities []CapabilityDefinition `yaml:"abilities"`
	Weapons   []CapabilityDefinition `yaml:"weapons"`
	Armors    []CapabilityDefinition `yaml:"armors"`
}

// TeamDefinition represents a team from the roster file
type TeamDefinition struct {
	Name   string           `yaml:"name"`
	Heroes []HeroDefinition `yaml:"heroes"`
}

// File represents the structure of a rosters.yaml file
type File struct {
	Teams []TeamDefinition `yaml:"teams"`
}

// LoadFromYAML loads team definitions from a YAML file
func LoadFromYAML(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster YAML: %w", err)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Rosters loaded", "path", filename, "teams", len(file.Teams))
	return &file, nil
}

// Validate checks names, health and strengths across every team.
func (f *File) Validate() error {
	for i, td := range f.Teams {
		if td.Name == "" {
			return fmt.Errorf("team %d: %w", i+1, ErrMissingName)
		}
		for j, hd := range td.Heroes {
			if hd.Name == "" {
				return fmt.Errorf("team %q hero %d: %w", td.Name, j+1, ErrMissingName)
			}
			if hd.Health < 0 {
				return fmt.Errorf("team %q hero %q: health %d must be non-negative", td.Name, hd.Name, hd.Health)
			}
			for _, group := range [][]CapabilityDefinition{hd.Abilities, hd.Weapons, hd.Armors} {
				for _, c := range group {
					if c.Max < 0 {
						return fmt.Errorf("team %q hero %q %q: %w", td.Name, hd.Name, c.Name, ErrInvalidStrength)
					}
				}
			}
			for _, a := range hd.Abilities {
				if _, err := ability.New(ability.Kind(a.Kind), a.Name, a.Max); err != nil {
					return fmt.Errorf("team %q hero %q: %w", td.Name, hd.Name, err)
				}
			}
			if len(hd.Abilities)+len(hd.Weapons) == 0 {
				logger.Warning("Hero has no abilities and cannot deal damage",
					"team", td.Name,
					"hero", hd.Name)
			}
		}
	}
	return nil
}

// Build creates the teams described by the file. Every hero draws from src;
// nil means the process-wide source.
func (f *File) Build(src dice.Source) ([]*team.Team, error) {
	teams := make([]*team.Team, 0, len(f.Teams))
	for _, td := range f.Teams {
		t := team.New(td.Name)
		for _, hd := range td.Heroes {
			h, err := CreateHeroFromDefinition(hd, src)
			if err != nil {
				return nil, fmt.Errorf("team %q: %w", td.Name, err)
			}
			t.AddHero(h)
		}
		teams = append(teams, t)
	}
	return teams, nil
}

// BuildPair creates the two arena teams.
func (f *File) BuildPair(src dice.Source) (*team.Team, *team.Team, error) {
	if len(f.Teams) != 2 {
		return nil, nil, fmt.Errorf("%w: roster has %d", ErrTeamCount, len(f.Teams))
	}
	teams, err := f.Build(src)
	if err != nil {
		return nil, nil, err
	}
	return teams[0], teams[1], nil
}

// CreateHeroFromDefinition creates a hero with its capabilities attached
func CreateHeroFromDefinition(def HeroDefinition, src dice.Source) (*hero.Hero, error) {
	health := def.Health
	if health == 0 {
		health = hero.DefaultStartingHealth
	}

	h := hero.New(def.Name, health)
	h.SetSource(src)
	for _, a := range def.Abilities {
		offense, err := ability.New(ability.Kind(a.Kind), a.Name, a.Max)
		if err != nil {
			return nil, fmt.Errorf("hero %q: %w", def.Name, err)
		}
		h.AddAbility(offense)
	}
	for _, w := range def.Weapons {
		h.AddWeapon(ability.NewWeapon(w.Name, w.Max))
	}
	for _, a := range def.Armors {
		h.AddArmor(ability.NewArmor(a.Name, a.Max))
	}
	return h, nil
}
