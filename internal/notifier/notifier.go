package notifier

import (
	"github.com/mauv0809/wordle-tally/internal/scoring"
	"github.com/mauv0809/wordle-tally/internal/wordle"
)

// Notifier defines a high-level interface for delivering and formatting
// messages about Wordle standings. This decouples the rest of the
// application from the specific chat provider (e.g., Slack).
type Notifier interface {
	// SendLeaderboard posts the standings to the given channel.
	SendLeaderboard(channelID string, entries []wordle.LeaderboardEntry, limit int) error

	// For formatting responses to slash commands
	FormatLeaderboardResponse(entries []wordle.LeaderboardEntry, limit int) (any, error)
	FormatStatsResponse(stats scoring.PlayerStats) (any, error)
	FormatHistoryResponse(playerID string, results []wordle.Result) (any, error)
	FormatInfoResponse(text string) (any, error)
	// FormatErrorResponse is the generic apology shown for unexpected
	// failures; the underlying error is logged, never rendered.
	FormatErrorResponse() (any, error)
}
