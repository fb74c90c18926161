package wordle

import (
	"fmt"
	"sync"
)

// MockStore is an in-memory implementation of the Store interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	Players map[string]*Player
	Puzzles map[int]*Puzzle
	Results map[string]*Result

	// Spies for method calls
	AddResultCalls   []string
	SavePuzzleCalls  []int
	LeaderboardFunc  func(limit int) ([]LeaderboardEntry, error)
	LeaderboardCalls []int
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{
		Players: make(map[string]*Player),
		Puzzles: make(map[int]*Puzzle),
		Results: make(map[string]*Result),
	}
}

func (m *MockStore) GetResult(playerID string, puzzleID int) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Results[fmt.Sprintf("%s_%d", playerID, puzzleID)], nil
}

func (m *MockStore) AddResult(playerID string, puzzleID int, attempts int) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := fmt.Sprintf("%s_%d", playerID, puzzleID)
	m.AddResultCalls = append(m.AddResultCalls, id)
	if _, ok := m.Results[id]; ok {
		return nil, nil
	}
	r := &Result{ID: id, Attempts: attempts, PlayerID: playerID, PuzzleID: puzzleID}
	m.Results[id] = r
	return r, nil
}

func (m *MockStore) GetOrCreatePlayer(id string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.Players[id]; ok {
		return p, nil
	}
	p := &Player{ID: id}
	m.Players[id] = p
	return p, nil
}

func (m *MockStore) PlayerResults(playerID string) ([]Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var results []Result
	for _, r := range m.Results {
		if r.PlayerID == playerID {
			result := *r
			if p, ok := m.Puzzles[r.PuzzleID]; ok {
				result.PuzzleDay = p.Day
				result.PuzzleSolution = p.Solution
			}
			results = append(results, result)
		}
	}
	return results, nil
}

func (m *MockStore) GetPuzzle(id int) (*Puzzle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Puzzles[id], nil
}

func (m *MockStore) SavePuzzle(puzzle *Puzzle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SavePuzzleCalls = append(m.SavePuzzleCalls, puzzle.ID)
	if _, ok := m.Puzzles[puzzle.ID]; !ok {
		m.Puzzles[puzzle.ID] = puzzle
	}
	return nil
}

func (m *MockStore) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LeaderboardCalls = append(m.LeaderboardCalls, limit)
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(limit)
	}
	return []LeaderboardEntry{}, nil
}

func (m *MockStore) CountPlayers() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Players), nil
}

func (m *MockStore) CountResults() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Results), nil
}

func (m *MockStore) CountPuzzles() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Puzzles), nil
}
