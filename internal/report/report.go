// Package report prints arena outcomes for players.
package report

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lawnchairsociety/herobattle/internal/arena"
	"github.com/lawnchairsociety/herobattle/internal/combat"
	"github.com/lawnchairsociety/herobattle/internal/hero"
	"github.com/lawnchairsociety/herobattle/internal/team"
)

// Reporter writes locale-formatted results to a writer.
type Reporter struct {
	w io.Writer
	p *message.Printer
}

// New creates a reporter that formats numbers for tag.
func New(w io.Writer, tag language.Tag) *Reporter {
	return &Reporter{w: w, p: message.NewPrinter(tag)}
}

// Battle prints the outcome of one team battle.
func (r *Reporter) Battle(result team.BattleResult) {
	switch {
	case result.Capped:
		r.p.Fprintf(r.w, "\nThe battle was called off after %d duels.\n", result.Duels)
	case result.Draw:
		r.p.Fprintf(r.w, "\nIts a draw!\n")
	default:
		r.p.Fprintf(r.w, "\n%s has won! (%d duels)\n", result.Winner.Name(), result.Duels)
	}
}

// Duel prints the outcome of one duel. It fits team.BattleOptions.OnDuel.
func (r *Reporter) Duel(first, second *hero.Hero, result combat.Result) {
	switch result.State {
	case combat.StateWon:
		r.p.Fprintf(r.w, "%s won a battle.\n", result.Winner.Name())
	case combat.StateDrawn:
		r.p.Fprintf(r.w, "%s and %s drew the battle\n", first.Name(), second.Name())
	default:
		r.p.Fprintf(r.w, "%s and %s were still fighting after %d rounds\n", first.Name(), second.Name(), result.Rounds)
	}
}

// Stats prints both teams' ratios, the surviving heroes and each hero's
// tallies.
func (r *Reporter) Stats(stats arena.Stats) {
	r.p.Fprintf(r.w, "%s KDR: %.2f\n", stats.TeamOne.Name, stats.TeamOne.KDR)
	r.p.Fprintf(r.w, "%s KDR: %.2f\n", stats.TeamTwo.Name, stats.TeamTwo.KDR)

	r.p.Fprintf(r.w, "Surviving Heroes: \n")
	for _, ts := range []arena.TeamStats{stats.TeamOne, stats.TeamTwo} {
		for _, name := range ts.Survivors {
			r.p.Fprintf(r.w, "%s\n", name)
		}
	}

	for _, ts := range []arena.TeamStats{stats.TeamOne, stats.TeamTwo} {
		r.p.Fprintf(r.w, "\n%s (%d kills, %d deaths)\n", ts.Name, ts.Kills, ts.Deaths)
		for _, h := range ts.Heroes {
			r.p.Fprintf(r.w, "  %-20s %d/%d HP  %d kills  %d deaths\n",
				h.Name, h.CurrentHealth, h.MaxHealth, h.Kills, h.Deaths)
		}
	}
	r.p.Fprintf(r.w, "\nBattles fought: %d\n", stats.Battles)
}

// Trials prints a duel simulation summary.
func (r *Reporter) Trials(s combat.TrialSummary) {
	r.p.Fprintf(r.w, "=== Duel Simulation ===\n\n")
	r.p.Fprintf(r.w, "%s vs %s, %d trials\n\n", s.FirstName, s.SecondName, s.Trials)
	r.p.Fprintf(r.w, "%s wins:  %d (%.1f%%)\n", s.FirstName, s.FirstWins, s.FirstWinRate)
	r.p.Fprintf(r.w, "%s wins:  %d\n", s.SecondName, s.SecondWins)
	r.p.Fprintf(r.w, "Draws:       %d\n", s.Draws)
	if s.Unresolved > 0 {
		r.p.Fprintf(r.w, "Unresolved:  %d (round cap reached)\n", s.Unresolved)
	}
	r.p.Fprintf(r.w, "Rounds:      avg %.1f, min %d, max %d\n", s.AvgRounds, s.MinRounds, s.MaxRounds)
}
