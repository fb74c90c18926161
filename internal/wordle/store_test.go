package wordle_test

import (
	"database/sql"
	"testing"

	"github.com/mauv0809/wordle-tally/internal/config"
	"github.com/mauv0809/wordle-tally/internal/database"
	"github.com/mauv0809/wordle-tally/internal/scoring"
	"github.com/mauv0809/wordle-tally/internal/wordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (wordle.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := wordle.New(db, testPoints())
	teardown := func() {
		dbTeardown()
	}

	return store, db, teardown
}

func TestGetOrCreatePlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	player, err := store.GetOrCreatePlayer("U1AAA")
	require.NoError(t, err)
	assert.Equal(t, "U1AAA", player.ID)

	again, err := store.GetOrCreatePlayer("U1AAA")
	require.NoError(t, err)
	assert.Equal(t, player.ID, again.ID)

	count, err := store.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSaveAndGetPuzzle(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	missing, err := store.GetPuzzle(1024)
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = store.SavePuzzle(&wordle.Puzzle{ID: 1024, Day: "2024-04-06", Solution: "CRANE"})
	require.NoError(t, err)

	puzzle, err := store.GetPuzzle(1024)
	require.NoError(t, err)
	require.NotNil(t, puzzle)
	assert.Equal(t, "2024-04-06", puzzle.Day)
	assert.Equal(t, "CRANE", puzzle.Solution)
}

func TestAddResultIsIdempotent(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.GetOrCreatePlayer("U1AAA")
	require.NoError(t, err)
	require.NoError(t, store.SavePuzzle(&wordle.Puzzle{ID: 1024, Day: "2024-04-06", Solution: "CRANE"}))

	result, err := store.AddResult("U1AAA", 1024, 4)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "U1AAA_1024", result.ID)
	assert.Equal(t, 4, result.Attempts)

	// A re-import of the same message must not double-count.
	dup, err := store.AddResult("U1AAA", 1024, 2)
	require.NoError(t, err)
	assert.Nil(t, dup)

	stored, err := store.GetResult("U1AAA", 1024)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 4, stored.Attempts)

	count, err := store.CountResults()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAddResultStoresFailureSentinel(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.GetOrCreatePlayer("U1AAA")
	require.NoError(t, err)
	require.NoError(t, store.SavePuzzle(&wordle.Puzzle{ID: 1024, Day: "2024-04-06", Solution: "CRANE"}))

	result, err := store.AddResult("U1AAA", 1024, wordle.AttemptsFailed)
	require.NoError(t, err)
	require.NotNil(t, result)

	stored, err := store.GetResult("U1AAA", 1024)
	require.NoError(t, err)
	assert.Equal(t, wordle.AttemptsFailed, stored.Attempts)
}

func TestPlayerResultsCarryPuzzleData(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.GetOrCreatePlayer("U1AAA")
	require.NoError(t, err)
	require.NoError(t, store.SavePuzzle(&wordle.Puzzle{ID: 1024, Day: "2024-04-06", Solution: "CRANE"}))
	require.NoError(t, store.SavePuzzle(&wordle.Puzzle{ID: 1025, Day: "2024-04-07", Solution: "SLATE"}))

	_, err = store.AddResult("U1AAA", 1024, 4)
	require.NoError(t, err)
	_, err = store.AddResult("U1AAA", 1025, 2)
	require.NoError(t, err)

	results, err := store.PlayerResults("U1AAA")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Newest puzzle first.
	assert.Equal(t, 1025, results[0].PuzzleID)
	assert.Equal(t, "2024-04-07", results[0].PuzzleDay)
	assert.Equal(t, "SLATE", results[0].PuzzleSolution)
	assert.Equal(t, 1024, results[1].PuzzleID)
}

func TestLeaderboard(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.SavePuzzle(&wordle.Puzzle{ID: 1024, Day: "2024-04-06", Solution: "CRANE"}))
	require.NoError(t, store.SavePuzzle(&wordle.Puzzle{ID: 1025, Day: "2024-04-07", Solution: "SLATE"}))

	seed := map[string][]struct {
		puzzleID int
		attempts int
	}{
		"U1AAA": {{1024, 1}, {1025, 3}},
		"U2BBB": {{1024, 6}},
		"U3CCC": {{1024, -1}},
	}
	for playerID, entries := range seed {
		_, err := store.GetOrCreatePlayer(playerID)
		require.NoError(t, err)
		for _, e := range entries {
			_, err := store.AddResult(playerID, e.puzzleID, e.attempts)
			require.NoError(t, err)
		}
	}

	entries, err := store.Leaderboard(10)
	require.NoError(t, err)

	// U3CCC's only result is a failure, leaving it at negative points and off
	// the board entirely.
	require.Len(t, entries, 2)
	assert.Equal(t, wordle.LeaderboardEntry{PlayerID: "U1AAA", Points: 14}, entries[0])
	assert.Equal(t, wordle.LeaderboardEntry{PlayerID: "U2BBB", Points: 1}, entries[1])

	limited, err := store.Leaderboard(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "U1AAA", limited[0].PlayerID)
}

// TestLeaderboardMatchesEngine checks the SQL point computation against the
// scoring engine over the same fixture, so the two can never drift apart.
func TestLeaderboardMatchesEngine(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	engine := scoring.New(testPoints())

	require.NoError(t, store.SavePuzzle(&wordle.Puzzle{ID: 1024, Day: "2024-04-06", Solution: "CRANE"}))
	require.NoError(t, store.SavePuzzle(&wordle.Puzzle{ID: 1025, Day: "2024-04-07", Solution: "SLATE"}))
	require.NoError(t, store.SavePuzzle(&wordle.Puzzle{ID: 1026, Day: "2024-04-08", Solution: "MOUND"}))

	seed := map[string][]int{
		"U1AAA": {1, 2, 3},
		"U2BBB": {-1, 4, 5},
		"U3CCC": {6, 6, -1},
	}
	puzzleIDs := []int{1024, 1025, 1026}
	for playerID, attempts := range seed {
		_, err := store.GetOrCreatePlayer(playerID)
		require.NoError(t, err)
		for i, a := range attempts {
			_, err := store.AddResult(playerID, puzzleIDs[i], a)
			require.NoError(t, err)
		}
	}

	entries, err := store.Leaderboard(10)
	require.NoError(t, err)

	for _, entry := range entries {
		results, err := store.PlayerResults(entry.PlayerID)
		require.NoError(t, err)
		assert.Equal(t, engine.TotalPoints(results), entry.Points, "points mismatch for %s", entry.PlayerID)
	}
}

func TestCounts(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	players, err := store.CountPlayers()
	require.NoError(t, err)
	results, err2 := store.CountResults()
	require.NoError(t, err2)
	puzzles, err3 := store.CountPuzzles()
	require.NoError(t, err3)
	assert.Zero(t, players)
	assert.Zero(t, results)
	assert.Zero(t, puzzles)

	_, err = store.GetOrCreatePlayer("U1AAA")
	require.NoError(t, err)
	require.NoError(t, store.SavePuzzle(&wordle.Puzzle{ID: 1024, Day: "2024-04-06", Solution: "CRANE"}))
	_, err = store.AddResult("U1AAA", 1024, 4)
	require.NoError(t, err)

	players, err = store.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, 1, players)
}
