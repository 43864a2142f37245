// Package config loads arena settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/herobattle/internal/combat"
	"github.com/lawnchairsociety/herobattle/internal/dice"
	"github.com/lawnchairsociety/herobattle/internal/team"
)

// ArenaConfig holds arena-wide configuration settings.
type ArenaConfig struct {
	Combat CombatConfig `yaml:"combat"`

	// Seed fixes the random source when non-zero. 0 uses the process-wide
	// source, which carries no reproducibility guarantee.
	Seed int64 `yaml:"seed" env:"ARENA_SEED"`

	// Locale selects number formatting in reports, e.g. "en" or "de".
	Locale string `yaml:"locale" env:"ARENA_LOCALE"`

	// Rosters is the path to the roster YAML file.
	Rosters string `yaml:"rosters" env:"ARENA_ROSTERS"`
}

// CombatConfig holds the safety caps for duels and battles.
type CombatConfig struct {
	// MaxRounds caps the rounds of a single duel. 0 means unbounded.
	MaxRounds int `yaml:"max_rounds" env:"ARENA_MAX_ROUNDS"`

	// MaxDuels caps the duels of a single team battle. 0 means unbounded.
	MaxDuels int `yaml:"max_duels" env:"ARENA_MAX_DUELS"`
}

// DefaultConfig returns an ArenaConfig with unbounded loops, matching the
// plain rules of the game.
func DefaultConfig() *ArenaConfig {
	return &ArenaConfig{
		Combat: CombatConfig{
			MaxRounds: 0,
			MaxDuels:  0,
		},
		Locale:  "en",
		Rosters: "data/rosters.yaml",
	}
}

// LoadConfig loads arena configuration from a YAML file and then applies
// environment overrides. A missing file yields the defaults.
func LoadConfig(path string) (*ArenaConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return config, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := ParseEnv(config); err != nil {
		return config, err
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// ParseEnv applies environment variable overrides onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects negative caps.
func (c *ArenaConfig) Validate() error {
	if c.Combat.MaxRounds < 0 {
		return fmt.Errorf("combat.max_rounds must be non-negative, got %d", c.Combat.MaxRounds)
	}
	if c.Combat.MaxDuels < 0 {
		return fmt.Errorf("combat.max_duels must be non-negative, got %d", c.Combat.MaxDuels)
	}
	return nil
}

// Source returns the random source the configuration asks for.
func (c *ArenaConfig) Source() dice.Source {
	if c.Seed != 0 {
		return dice.NewSeeded(c.Seed)
	}
	return dice.Default()
}

// LanguageTag parses Locale, falling back to English.
func (c *ArenaConfig) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// BattleOptions converts the combat caps into team battle options.
func (c *ArenaConfig) BattleOptions(src dice.Source) team.BattleOptions {
	return team.BattleOptions{
		MaxDuels: c.Combat.MaxDuels,
		Duel:     c.DuelOptions(),
		Source:   src,
	}
}

// DuelOptions converts the combat caps into duel options.
func (c *ArenaConfig) DuelOptions() combat.Options {
	return combat.Options{MaxRounds: c.Combat.MaxRounds}
}
