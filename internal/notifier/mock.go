package notifier

import (
	"sync"

	"github.com/mauv0809/wordle-tally/internal/scoring"
	"github.com/mauv0809/wordle-tally/internal/wordle"
)

// MockNotifier is a mock implementation of the Notifier interface for
// testing. It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	// Spies for method calls
	SendLeaderboardFunc           func(channelID string, entries []wordle.LeaderboardEntry, limit int) error
	FormatLeaderboardResponseFunc func(entries []wordle.LeaderboardEntry, limit int) (any, error)
	FormatStatsResponseFunc       func(stats scoring.PlayerStats) (any, error)
	FormatHistoryResponseFunc     func(playerID string, results []wordle.Result) (any, error)
	FormatInfoResponseFunc        func(text string) (any, error)
	FormatErrorResponseFunc       func() (any, error)

	// Call records
	SendLeaderboardCalls []string
	StatsFormatted       []scoring.PlayerStats
	HistoryFormatted     []string
	InfoFormatted        []string
	ErrorsFormatted      int
}

// NewMockNotifier creates a new mock instance.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendLeaderboard(channelID string, entries []wordle.LeaderboardEntry, limit int) error {
	m.mu.Lock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, channelID)
	fn := m.SendLeaderboardFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(channelID, entries, limit)
	}
	return nil
}

func (m *MockNotifier) FormatLeaderboardResponse(entries []wordle.LeaderboardEntry, limit int) (any, error) {
	m.mu.Lock()
	fn := m.FormatLeaderboardResponseFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(entries, limit)
	}
	return entries, nil
}

func (m *MockNotifier) FormatStatsResponse(stats scoring.PlayerStats) (any, error) {
	m.mu.Lock()
	m.StatsFormatted = append(m.StatsFormatted, stats)
	fn := m.FormatStatsResponseFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(stats)
	}
	return stats, nil
}

func (m *MockNotifier) FormatHistoryResponse(playerID string, results []wordle.Result) (any, error) {
	m.mu.Lock()
	m.HistoryFormatted = append(m.HistoryFormatted, playerID)
	fn := m.FormatHistoryResponseFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(playerID, results)
	}
	return results, nil
}

func (m *MockNotifier) FormatInfoResponse(text string) (any, error) {
	m.mu.Lock()
	m.InfoFormatted = append(m.InfoFormatted, text)
	fn := m.FormatInfoResponseFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(text)
	}
	return text, nil
}

func (m *MockNotifier) FormatErrorResponse() (any, error) {
	m.mu.Lock()
	m.ErrorsFormatted++
	fn := m.FormatErrorResponseFunc
	m.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return "error", nil
}
