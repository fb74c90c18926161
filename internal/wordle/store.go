package wordle

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tally/internal/config"
)

// New creates a new Store. The points config drives the SQL ranking
// expression used by Leaderboard; it must match the table the scoring
// engine was built with.
func New(db *sql.DB, points config.PointsConfig) Store {
	return &store{
		db:     db,
		points: points,
	}
}

func (s *store) GetResult(playerID string, puzzleID int) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resultID := fmt.Sprintf("%s_%d", playerID, puzzleID)

	var r Result
	err := s.db.QueryRow(
		"SELECT id, attempts, player_id, puzzle_id FROM wordle_results WHERE id = ?",
		resultID,
	).Scan(&r.ID, &r.Attempts, &r.PlayerID, &r.PuzzleID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query result %s: %w", resultID, err)
	}
	return &r, nil
}

func (s *store) AddResult(playerID string, puzzleID int, attempts int) (*Result, error) {
	existing, err := s.GetResult(playerID, puzzleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Debug("Skipped result creation, already exists", "playerID", playerID, "puzzleID", puzzleID)
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := &Result{
		ID:       fmt.Sprintf("%s_%d", playerID, puzzleID),
		Attempts: attempts,
		PlayerID: playerID,
		PuzzleID: puzzleID,
	}

	// ON CONFLICT DO NOTHING absorbs the race where two imports of the same
	// message land at once: the primary key decides, not a lock.
	res, err := s.db.Exec(`
		INSERT INTO wordle_results (id, attempts, player_id, puzzle_id)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING;
	`, result.ID, result.Attempts, result.PlayerID, result.PuzzleID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert result %s: %w", result.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		log.Debug("Result insert lost a race, treating as already imported", "resultID", result.ID)
		return nil, nil
	}

	log.Info("Added result", "resultID", result.ID, "attempts", result.Attempts)
	return result, nil
}

func (s *store) GetOrCreatePlayer(id string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check player %s: %w", id, err)
	}

	if !exists {
		_, err := s.db.Exec("INSERT INTO players (id) VALUES (?) ON CONFLICT(id) DO NOTHING", id)
		if err != nil {
			return nil, fmt.Errorf("failed to create player %s: %w", id, err)
		}
		log.Info("Created new player", "playerID", id)
	}

	return &Player{ID: id}, nil
}

// PlayerResults returns a player's results joined with their puzzle's day
// and solution, newest puzzle first.
func (s *store) PlayerResults(playerID string) ([]Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT r.id, r.attempts, r.player_id, r.puzzle_id, p.day, p.solution
		FROM wordle_results r
		JOIN wordle_puzzles p ON p.id = r.puzzle_id
		WHERE r.player_id = ?
		ORDER BY r.puzzle_id DESC
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results for player %s: %w", playerID, err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.Attempts, &r.PlayerID, &r.PuzzleID, &r.PuzzleDay, &r.PuzzleSolution); err != nil {
			log.Error("Failed to scan result row", "error", err)
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *store) GetPuzzle(id int) (*Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Puzzle
	err := s.db.QueryRow("SELECT id, day, solution FROM wordle_puzzles WHERE id = ?", id).
		Scan(&p.ID, &p.Day, &p.Solution)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query puzzle %d: %w", id, err)
	}
	return &p, nil
}

func (s *store) SavePuzzle(puzzle *Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO wordle_puzzles (id, day, solution)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING;
	`, puzzle.ID, puzzle.Day, puzzle.Solution)
	if err != nil {
		return fmt.Errorf("failed to save puzzle %d: %w", puzzle.ID, err)
	}
	log.Info("Saved puzzle", "puzzleID", puzzle.ID, "day", puzzle.Day)
	return nil
}

// Leaderboard ranks players by total points, descending, dropping anyone at
// or below zero. The points sum is pushed down to SQL as a CASE expression
// so ranking does not require loading every result; the scoring engine
// computes the identical sum in-process for single-player stats.
func (s *store) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT p.id,
			COALESCE(SUM(CASE r.attempts
				WHEN 1 THEN ?
				WHEN 2 THEN ?
				WHEN 3 THEN ?
				WHEN 4 THEN ?
				WHEN 5 THEN ?
				WHEN 6 THEN ?
				ELSE ?
			END), 0) AS points
		FROM players p
		JOIN wordle_results r ON r.player_id = p.id
		GROUP BY p.id
		HAVING points > 0
		ORDER BY points DESC
		LIMIT ?
	`, s.points.Attempts1, s.points.Attempts2, s.points.Attempts3,
		s.points.Attempts4, s.points.Attempts5, s.points.Attempts6,
		s.points.Fail, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.Points); err != nil {
			log.Error("Failed to scan leaderboard row", "error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *store) CountPlayers() (int, error) {
	return s.count("players")
}

func (s *store) CountResults() (int, error) {
	return s.count("wordle_results")
}

func (s *store) CountPuzzles() (int, error) {
	return s.count("wordle_puzzles")
}

func (s *store) count(table string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
