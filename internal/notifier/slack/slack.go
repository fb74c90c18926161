package slack

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tally/internal/notifier"
	"github.com/mauv0809/wordle-tally/internal/wordle"
	"github.com/slack-go/slack"
)

// SlackNotifier implements notifier.Notifier over the Slack Web API.
type SlackNotifier struct {
	api              *slack.Client
	defaultChannelID string
}

// NewNotifier creates a new Slack notifier.
func NewNotifier(token, defaultChannelID string) *SlackNotifier {
	return &SlackNotifier{
		api:              slack.New(token),
		defaultChannelID: defaultChannelID,
	}
}

// NewNotifierWithAPI creates a notifier with a custom API client. Used for testing.
func NewNotifierWithAPI(api *slack.Client, defaultChannelID string) *SlackNotifier {
	return &SlackNotifier{
		api:              api,
		defaultChannelID: defaultChannelID,
	}
}

// Ensure SlackNotifier implements the notifier.Notifier interface.
var _ notifier.Notifier = (*SlackNotifier)(nil)

// SendLeaderboard posts the standings to the given channel, falling back to
// the configured default channel.
func (n *SlackNotifier) SendLeaderboard(channelID string, entries []wordle.LeaderboardEntry, limit int) error {
	if n.api == nil {
		log.Warn("Slack client is not configured. Skipping notification.")
		return errors.New("slack client is not configured")
	}
	if channelID == "" {
		channelID = n.defaultChannelID
	}

	msg := n.formatLeaderboard(entries, limit)
	_, _, err := n.api.PostMessage(channelID, slack.MsgOptionBlocks(msg.Blocks.BlockSet...))
	if err != nil {
		log.Error("Failed to send Slack message", "error", err, "channelID", channelID)
		return err
	}
	return nil
}
