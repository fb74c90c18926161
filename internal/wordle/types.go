package wordle

import (
	"database/sql"
	"sync"

	"github.com/mauv0809/wordle-tally/internal/config"
)

// AttemptsFailed is the sentinel stored for a puzzle the player did not
// solve within six guesses (the X/6 grade).
const AttemptsFailed = -1

// Player is a Slack user who has at least one recorded result.
type Player struct {
	ID string
}

// Puzzle is a single daily Wordle. The id is the number the official bot
// prints in share cards, the day is the calendar day it ran ("2006-01-02"),
// and the solution is the upper-cased answer word. Puzzles never change
// once stored.
type Puzzle struct {
	ID       int
	Day      string
	Solution string
}

// Result is one player's outcome for one puzzle. The id is
// "{player_id}_{puzzle_id}", which doubles as the uniqueness guarantee:
// at most one result per player per puzzle.
type Result struct {
	ID       string
	Attempts int
	PlayerID string
	PuzzleID int

	// Denormalized from the puzzle row on reads that join it.
	PuzzleDay      string
	PuzzleSolution string
}

// LeaderboardEntry is a player's total points, as ranked by Leaderboard.
type LeaderboardEntry struct {
	PlayerID string
	Points   int
}

// store handles all database operations for Wordle data.
type store struct {
	db     *sql.DB
	points config.PointsConfig
	mu     sync.RWMutex
}
