// arena runs team battles between two rosters and reports the results.
//
// Usage:
//
//	arena [options]
//
// Teams come from a roster YAML file, or from prompts with -interactive.
// After each battle the arena asks whether to play again; answering "n"
// ends the run, anything else revives both teams and fights again.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/herobattle/internal/arena"
	"github.com/lawnchairsociety/herobattle/internal/config"
	"github.com/lawnchairsociety/herobattle/internal/dice"
	"github.com/lawnchairsociety/herobattle/internal/logger"
	"github.com/lawnchairsociety/herobattle/internal/report"
	"github.com/lawnchairsociety/herobattle/internal/roster"
	"github.com/lawnchairsociety/herobattle/internal/team"
)

func main() {
	configFile := flag.String("config", "data/arena.yaml", "Path to arena config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	rostersFile := flag.String("rosters", "", "Path to rosters YAML file (overrides config)")
	interactive := flag.Bool("interactive", false, "Build both teams from prompts instead of a roster file")
	seed := flag.Int64("seed", 0, "Random seed (overrides config; 0 keeps the config value)")
	flag.Parse()

	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Error("Failed to load arena config", "path", *configFile, "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *rostersFile != "" {
		cfg.Rosters = *rostersFile
	}
	if cfg.Seed == 0 {
		if cfg.Seed, err = dice.NewSeed(); err != nil {
			logger.Warning("Falling back to unseeded dice", "error", err)
		}
	}

	src := cfg.Source()
	logger.Always("Arena starting", "seed", cfg.Seed, "max_rounds", cfg.Combat.MaxRounds, "max_duels", cfg.Combat.MaxDuels)

	prompter := roster.NewPrompter(os.Stdin, os.Stdout, src)

	teamOne, teamTwo, err := buildTeams(cfg, prompter, *interactive, src)
	if err != nil {
		logger.Error("Failed to build teams", "error", err)
		os.Exit(1)
	}

	reporter := report.New(os.Stdout, cfg.LanguageTag())
	opts := cfg.BattleOptions(src)
	opts.OnDuel = reporter.Duel
	a := arena.New(teamOne, teamTwo, opts)

	for {
		reporter.Battle(a.TeamBattle())
		reporter.Stats(a.Snapshot())

		if !prompter.PlayAgain() {
			break
		}
		a.Revive()
	}

	fmt.Println("Thanks for playing!")
}

func buildTeams(cfg *config.ArenaConfig, prompter *roster.Prompter, interactive bool, src dice.Source) (*team.Team, *team.Team, error) {
	if interactive {
		one, err := prompter.BuildTeam("Team One")
		if err != nil {
			return nil, nil, err
		}
		two, err := prompter.BuildTeam("Team Two")
		if err != nil {
			return nil, nil, err
		}
		return one, two, nil
	}

	file, err := roster.LoadFromYAML(cfg.Rosters)
	if err != nil {
		return nil, nil, err
	}
	return file.BuildPair(src)
}
