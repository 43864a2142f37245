package combat

import (
	"github.com/lawnchairsociety/herobattle/internal/hero"
)

// Matchup builds a fresh pair of heroes for one trial.
type Matchup func() (first, second *hero.Hero)

// TrialSummary holds aggregated results from many duels of the same matchup.
type TrialSummary struct {
	Trials       int
	FirstWins    int
	SecondWins   int
	Draws        int
	Unresolved   int // duels stopped by the round cap
	FirstWinRate float64
	AvgRounds    float64
	MinRounds    int
	MaxRounds    int
	FirstName    string
	SecondName   string
}

// RunTrials runs iterations independent duels and aggregates the outcomes.
// Each trial gets a new pair from matchup so tallies and health never leak
// between trials.
func RunTrials(matchup Matchup, iterations int, opts Options) TrialSummary {
	summary := TrialSummary{Trials: iterations}
	if iterations <= 0 {
		return summary
	}

	totalRounds := 0
	for i := 0; i < iterations; i++ {
		first, second := matchup()
		if i == 0 {
			summary.FirstName = first.Name()
			summary.SecondName = second.Name()
		}

		result := Duel(first, second, opts)
		switch {
		case result.State == StateOngoing:
			summary.Unresolved++
		case result.State == StateDrawn:
			summary.Draws++
		case result.Winner == first:
			summary.FirstWins++
		default:
			summary.SecondWins++
		}

		totalRounds += result.Rounds
		if i == 0 || result.Rounds < summary.MinRounds {
			summary.MinRounds = result.Rounds
		}
		if result.Rounds > summary.MaxRounds {
			summary.MaxRounds = result.Rounds
		}
	}

	summary.FirstWinRate = float64(summary.FirstWins) / float64(iterations) * 100
	summary.AvgRounds = float64(totalRounds) / float64(iterations)

	return summary
}
