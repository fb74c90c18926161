package scoring_test

import (
	"testing"

	"github.com/mauv0809/wordle-tally/internal/config"
	"github.com/mauv0809/wordle-tally/internal/scoring"
	"github.com/mauv0809/wordle-tally/internal/wordle"
	"github.com/stretchr/testify/assert"
)

func testPoints() config.PointsConfig {
	return config.PointsConfig{
		Attempts1: 10,
		Attempts2: 5,
		Attempts3: 4,
		Attempts4: 3,
		Attempts5: 2,
		Attempts6: 1,
		Fail:      -5,
	}
}

func results(attempts ...int) []wordle.Result {
	out := make([]wordle.Result, len(attempts))
	for i, a := range attempts {
		out[i] = wordle.Result{Attempts: a}
	}
	return out
}

func TestPointsFor(t *testing.T) {
	e := scoring.New(testPoints())

	assert.Equal(t, 10, e.PointsFor(1))
	assert.Equal(t, 5, e.PointsFor(2))
	assert.Equal(t, 4, e.PointsFor(3))
	assert.Equal(t, 3, e.PointsFor(4))
	assert.Equal(t, 2, e.PointsFor(5))
	assert.Equal(t, 1, e.PointsFor(6))
	assert.Equal(t, -5, e.PointsFor(wordle.AttemptsFailed))
}

func TestTotalPoints(t *testing.T) {
	e := scoring.New(testPoints())

	assert.Equal(t, 6, e.TotalPoints(results(1, 6, -1)))
	assert.Equal(t, 0, e.TotalPoints(nil))

	// A run of failures can push the total below zero.
	assert.Equal(t, -10, e.TotalPoints(results(-1, -1)))
}

func TestAverageAttempts(t *testing.T) {
	e := scoring.New(testPoints())

	assert.Equal(t, 0, e.AverageAttempts(nil))
	assert.Equal(t, 4, e.AverageAttempts(results(3, 4, 5)))
	// 3.5 rounds up.
	assert.Equal(t, 4, e.AverageAttempts(results(3, 4)))
}

func TestStats(t *testing.T) {
	e := scoring.New(testPoints())

	stats := e.Stats("U1AAA", results(1, 4, -1, 6), 20)

	assert.Equal(t, "U1AAA", stats.PlayerID)
	assert.Equal(t, 10+3-5+1, stats.Points)
	assert.Equal(t, 4, stats.Completions)
	assert.Equal(t, 20, stats.TotalPuzzles)
	assert.Equal(t, 1, stats.Aces)
	assert.Equal(t, 1, stats.Fails)
}

func TestFilterByAttempts(t *testing.T) {
	all := results(1, 3, 6, -1)

	t.Run("open bounds keep everything", func(t *testing.T) {
		assert.Len(t, scoring.FilterByAttempts(all, 0, 0), 4)
	})

	t.Run("max of six excludes failures", func(t *testing.T) {
		filtered := scoring.FilterByAttempts(all, 0, 6)
		assert.Len(t, filtered, 3)
		for _, r := range filtered {
			assert.NotEqual(t, wordle.AttemptsFailed, r.Attempts)
		}
	})

	t.Run("failures count as seven", func(t *testing.T) {
		filtered := scoring.FilterByAttempts(all, 7, 0)
		assert.Len(t, filtered, 1)
		assert.Equal(t, wordle.AttemptsFailed, filtered[0].Attempts)
	})

	t.Run("band keeps the middle", func(t *testing.T) {
		filtered := scoring.FilterByAttempts(all, 2, 5)
		assert.Len(t, filtered, 1)
		assert.Equal(t, 3, filtered[0].Attempts)
	})
}

func TestBuildLeaderboard(t *testing.T) {
	entries := []wordle.LeaderboardEntry{
		{PlayerID: "U1AAA", Points: 42},
		{PlayerID: "U2BBB", Points: 17},
		{PlayerID: "U3CCC", Points: 3},
	}

	assert.Equal(t, "1. <@U1AAA>: 42 points\n2. <@U2BBB>: 17 points\n3. <@U3CCC>: 3 points",
		scoring.BuildLeaderboard(entries, 10))
	assert.Equal(t, "1. <@U1AAA>: 42 points", scoring.BuildLeaderboard(entries, 1))
	assert.Equal(t, "", scoring.BuildLeaderboard(nil, 10))
}
