package slack

import (
	"testing"

	"github.com/mauv0809/wordle-tally/internal/scoring"
	"github.com/mauv0809/wordle-tally/internal/wordle"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotifier() *SlackNotifier {
	return NewNotifierWithAPI(nil, "C0DEFAULT")
}

// sectionText digs the mrkdwn body out of a header+section block message.
func sectionText(t *testing.T, msg slack.Message) string {
	t.Helper()
	require.GreaterOrEqual(t, len(msg.Blocks.BlockSet), 2)
	section, ok := msg.Blocks.BlockSet[1].(*slack.SectionBlock)
	require.True(t, ok)
	return section.Text.Text
}

func TestFormatLeaderboardResponse(t *testing.T) {
	n := testNotifier()

	entries := []wordle.LeaderboardEntry{
		{PlayerID: "U1AAA", Points: 42},
		{PlayerID: "U2BBB", Points: 17},
	}
	raw, err := n.FormatLeaderboardResponse(entries, 10)
	require.NoError(t, err)
	msg, ok := raw.(slack.Message)
	require.True(t, ok)

	body := sectionText(t, msg)
	assert.Contains(t, body, "1. <@U1AAA>: 42 points")
	assert.Contains(t, body, "2. <@U2BBB>: 17 points")
}

func TestFormatLeaderboardResponseEmpty(t *testing.T) {
	n := testNotifier()

	raw, err := n.FormatLeaderboardResponse(nil, 10)
	require.NoError(t, err)
	msg, ok := raw.(slack.Message)
	require.True(t, ok)

	assert.Contains(t, sectionText(t, msg), "No player stats are available")
}

func TestFormatStatsResponse(t *testing.T) {
	n := testNotifier()

	raw, err := n.FormatStatsResponse(scoring.PlayerStats{
		PlayerID:     "U1AAA",
		Points:       23,
		Completions:  5,
		TotalPuzzles: 9,
		Average:      4,
		Fails:        1,
		Aces:         1,
	})
	require.NoError(t, err)
	msg, ok := raw.(slack.Message)
	require.True(t, ok)

	body := sectionText(t, msg)
	assert.Contains(t, body, "<@U1AAA>")
	assert.Contains(t, body, "*Points:* 23")
	assert.Contains(t, body, "*Completions:* 5 (of 9)")
}

func TestFormatHistoryResponse(t *testing.T) {
	n := testNotifier()

	results := []wordle.Result{
		{Attempts: 3, PuzzleDay: "2024-04-07", PuzzleSolution: "SLATE"},
		{Attempts: wordle.AttemptsFailed, PuzzleDay: "2024-04-06", PuzzleSolution: "CRANE"},
	}
	raw, err := n.FormatHistoryResponse("U1AAA", results)
	require.NoError(t, err)
	msg, ok := raw.(slack.Message)
	require.True(t, ok)

	body := sectionText(t, msg)
	assert.Contains(t, body, "• [2024-04-07] `SLATE`: 3/6")
	assert.Contains(t, body, "• [2024-04-06] `CRANE`: X/6")
}

func TestFormatHistoryResponseEmpty(t *testing.T) {
	n := testNotifier()

	raw, err := n.FormatHistoryResponse("U1AAA", nil)
	require.NoError(t, err)
	msg, ok := raw.(slack.Message)
	require.True(t, ok)

	assert.Contains(t, sectionText(t, msg), "No history recorded.")
}

func TestSendLeaderboardWithoutClient(t *testing.T) {
	n := testNotifier()

	err := n.SendLeaderboard("C012345", nil, 10)
	assert.Error(t, err)
}
