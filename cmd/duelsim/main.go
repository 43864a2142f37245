// duelsim is a Monte Carlo runner for single duels.
//
// Usage:
//
//	duelsim [options]
//
// Examples:
//
//	duelsim -a-ability=300 -b-ability=20
//	duelsim -a-weapon=40 -a-armor=10 -b-ability=60 -iterations=50000
//	duelsim -a-ability=0 -b-ability=0 -max-rounds=1000
package main

import (
	"flag"
	"os"

	"github.com/lawnchairsociety/herobattle/internal/ability"
	"github.com/lawnchairsociety/herobattle/internal/combat"
	"github.com/lawnchairsociety/herobattle/internal/config"
	"github.com/lawnchairsociety/herobattle/internal/dice"
	"github.com/lawnchairsociety/herobattle/internal/hero"
	"github.com/lawnchairsociety/herobattle/internal/logger"
	"github.com/lawnchairsociety/herobattle/internal/report"
)

// template describes one side of the matchup; a negative strength leaves
// that capability off.
type template struct {
	name    string
	health  int
	ability int
	weapon  int
	armor   int
}

func (t template) build(src dice.Source) *hero.Hero {
	h := hero.New(t.name, t.health)
	h.SetSource(src)
	if t.ability >= 0 {
		h.AddAbility(ability.NewAbility(t.name+" ability", t.ability))
	}
	if t.weapon >= 0 {
		h.AddWeapon(ability.NewWeapon(t.name+" weapon", t.weapon))
	}
	if t.armor >= 0 {
		h.AddArmor(ability.NewArmor(t.name+" armor", t.armor))
	}
	return h
}

func main() {
	fs := flag.NewFlagSet("duelsim", flag.ExitOnError)

	var a, b template
	fs.StringVar(&a.name, "a-name", "Hero A", "First hero name (strikes first)")
	fs.IntVar(&a.health, "a-hp", hero.DefaultStartingHealth, "First hero health")
	fs.IntVar(&a.ability, "a-ability", 50, "First hero ability max damage (-1 for none)")
	fs.IntVar(&a.weapon, "a-weapon", -1, "First hero weapon max damage (-1 for none)")
	fs.IntVar(&a.armor, "a-armor", -1, "First hero armor max block (-1 for none)")

	fs.StringVar(&b.name, "b-name", "Hero B", "Second hero name")
	fs.IntVar(&b.health, "b-hp", hero.DefaultStartingHealth, "Second hero health")
	fs.IntVar(&b.ability, "b-ability", 50, "Second hero ability max damage (-1 for none)")
	fs.IntVar(&b.weapon, "b-weapon", -1, "Second hero weapon max damage (-1 for none)")
	fs.IntVar(&b.armor, "b-armor", -1, "Second hero armor max block (-1 for none)")

	iterations := fs.Int("iterations", 10000, "Number of duels to run")
	maxRounds := fs.Int("max-rounds", 10000, "Round cap per duel (0 for none)")
	seed := fs.Int64("seed", 0, "Random seed (0 for the process-wide source)")
	locale := fs.String("locale", "en", "Locale for number formatting")
	logLevel := fs.String("log-level", "WARNING", "Log level")

	fs.Parse(os.Args[1:])

	logger.SetOutput(os.Stderr, "text", *logLevel)

	if *maxRounds == 0 {
		logger.Warning("Running without a round cap; zero-damage matchups will never finish")
	}

	cfg := config.DefaultConfig()
	cfg.Seed = *seed
	cfg.Locale = *locale
	cfg.Combat.MaxRounds = *maxRounds
	src := cfg.Source()

	summary := combat.RunTrials(func() (*hero.Hero, *hero.Hero) {
		return a.build(src), b.build(src)
	}, *iterations, cfg.DuelOptions())

	report.New(os.Stdout, cfg.LanguageTag()).Trials(summary)
}
