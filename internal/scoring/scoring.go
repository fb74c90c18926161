package scoring

import (
	"math"

	"github.com/mauv0809/wordle-tally/internal/config"
	"github.com/mauv0809/wordle-tally/internal/wordle"
)

// Engine computes points and aggregate statistics over result sets. It is
// pure: all state is the points table it was constructed with.
type Engine struct {
	points config.PointsConfig
}

// New creates an Engine with the given points table.
func New(points config.PointsConfig) *Engine {
	return &Engine{points: points}
}

// PointsFor maps an attempt count to its point value. Anything outside 1-6
// is the failure bucket.
func (e *Engine) PointsFor(attempts int) int {
	switch attempts {
	case 1:
		return e.points.Attempts1
	case 2:
		return e.points.Attempts2
	case 3:
		return e.points.Attempts3
	case 4:
		return e.points.Attempts4
	case 5:
		return e.points.Attempts5
	case 6:
		return e.points.Attempts6
	default:
		return e.points.Fail
	}
}

// TotalPoints sums the point value of every result. There is no cap and the
// total can go negative.
func (e *Engine) TotalPoints(results []wordle.Result) int {
	total := 0
	for _, r := range results {
		total += e.PointsFor(r.Attempts)
	}
	return total
}

// AverageAttempts is the rounded mean attempt count, 0 for an empty set.
func (e *Engine) AverageAttempts(results []wordle.Result) int {
	if len(results) == 0 {
		return 0
	}
	total := 0
	for _, r := range results {
		total += r.Attempts
	}
	return int(math.Round(float64(total) / float64(len(results))))
}

// Completions is the number of recorded results, failures included.
func (e *Engine) Completions(results []wordle.Result) int {
	return len(results)
}

// Fails counts results carrying the failure sentinel.
func (e *Engine) Fails(results []wordle.Result) int {
	n := 0
	for _, r := range results {
		if r.Attempts == wordle.AttemptsFailed {
			n++
		}
	}
	return n
}

// Aces counts first-guess solves.
func (e *Engine) Aces(results []wordle.Result) int {
	n := 0
	for _, r := range results {
		if r.Attempts == 1 {
			n++
		}
	}
	return n
}

// PlayerStats is the aggregate view served by the stats command.
type PlayerStats struct {
	PlayerID     string
	Points       int
	Completions  int
	TotalPuzzles int
	Average      int
	Fails        int
	Aces         int
}

// Stats computes every aggregate for one player's result set.
func (e *Engine) Stats(playerID string, results []wordle.Result, totalPuzzles int) PlayerStats {
	return PlayerStats{
		PlayerID:     playerID,
		Points:       e.TotalPoints(results),
		Completions:  e.Completions(results),
		TotalPuzzles: totalPuzzles,
		Average:      e.AverageAttempts(results),
		Fails:        e.Fails(results),
		Aces:         e.Aces(results),
	}
}

// FilterByAttempts keeps results whose attempt count lies in [min, max].
// Zero bounds are open. Failures are normalized to 7 for the comparison, so
// a max of 6 excludes them and an unbounded max keeps them.
func FilterByAttempts(results []wordle.Result, min, max int) []wordle.Result {
	if min == 0 && max == 0 {
		return results
	}
	var filtered []wordle.Result
	for _, r := range results {
		attempts := r.Attempts
		if attempts == wordle.AttemptsFailed {
			attempts = 7
		}
		if min != 0 && attempts < min {
			continue
		}
		if max != 0 && attempts > max {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
