package slack

import (
	"fmt"
	"strings"

	"github.com/mauv0809/wordle-tally/internal/scoring"
	"github.com/mauv0809/wordle-tally/internal/wordle"
	"github.com/slack-go/slack"
)

// historyPageLimit caps how many entries a history reply renders.
const historyPageLimit = 25

// formatLeaderboard creates the leaderboard message using Block Kit.
func (n *SlackNotifier) formatLeaderboard(entries []wordle.LeaderboardEntry, limit int) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🟩 Wordle Leaderboard 🟩", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	body := scoring.BuildLeaderboard(entries, limit)
	if body == "" {
		body = "No player stats are available to populate the leaderboard."
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", body, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// FormatLeaderboardResponse formats the standings as a slash-command reply.
func (n *SlackNotifier) FormatLeaderboardResponse(entries []wordle.LeaderboardEntry, limit int) (any, error) {
	return n.formatLeaderboard(entries, limit), nil
}

// FormatStatsResponse formats one player's aggregates.
func (n *SlackNotifier) FormatStatsResponse(stats scoring.PlayerStats) (any, error) {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🟩 Wordle Statistics 🟩", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	body := fmt.Sprintf("Statistics for <@%s>\n", stats.PlayerID)
	body += fmt.Sprintf("• *Points:* %d\n", stats.Points)
	body += fmt.Sprintf("• *Completions:* %d (of %d)\n", stats.Completions, stats.TotalPuzzles)
	body += fmt.Sprintf("• *Average:* %d\n", stats.Average)
	body += fmt.Sprintf("• *Aces:* %d\n", stats.Aces)
	body += fmt.Sprintf("• *Fails:* %d", stats.Fails)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", body, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...), nil
}

// FormatHistoryResponse formats a player's puzzle history, newest first.
// The solution is spoilered behind a code span.
func (n *SlackNotifier) FormatHistoryResponse(playerID string, results []wordle.Result) (any, error) {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🟩 Wordle History 🟩", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for i, r := range results {
		if i >= historyPageLimit {
			break
		}
		grade := "X"
		if r.Attempts != wordle.AttemptsFailed {
			grade = fmt.Sprintf("%d", r.Attempts)
		}
		lines = append(lines, fmt.Sprintf("• [%s] `%s`: %s/6", r.PuzzleDay, r.PuzzleSolution, grade))
	}

	body := fmt.Sprintf("History for <@%s>", playerID)
	if len(lines) > 0 {
		body += "\n" + strings.Join(lines, "\n")
	} else {
		body += "\nNo history recorded."
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", body, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...), nil
}

// FormatInfoResponse wraps a plain informational line.
func (n *SlackNotifier) FormatInfoResponse(text string) (any, error) {
	block := slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil)
	return slack.NewBlockMessage(block), nil
}

// FormatErrorResponse is the generic apology for unexpected failures.
func (n *SlackNotifier) FormatErrorResponse() (any, error) {
	return n.FormatInfoResponse("Sorry, something went wrong while handling that command. Please try again.")
}
