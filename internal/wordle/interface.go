package wordle

// Store defines the interface for persisting and querying Wordle data.
type Store interface {
	GetResult(playerID string, puzzleID int) (*Result, error)
	// AddResult records a result unless one already exists for the same
	// player and puzzle. It returns nil when the result was already present,
	// so re-importing a message never double-counts.
	AddResult(playerID string, puzzleID int, attempts int) (*Result, error)
	GetOrCreatePlayer(id string) (*Player, error)
	PlayerResults(playerID string) ([]Result, error)
	GetPuzzle(id int) (*Puzzle, error)
	SavePuzzle(puzzle *Puzzle) error
	Leaderboard(limit int) ([]LeaderboardEntry, error)
	CountPlayers() (int, error)
	CountResults() (int, error)
	CountPuzzles() (int, error)
}
