package slack

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tally/internal/chat"
	"github.com/slack-go/slack"
)

// historyPageSize is the maximum Slack allows per conversations.history call.
const historyPageSize = 200

var (
	// Attachment author links look like https://team.slack.com/team/U12345.
	rgxAuthorLink = regexp.MustCompile(`/team/(\w+)$`)
	// Message permalinks look like https://team.slack.com/archives/C123/p1712345678000100.
	rgxPermalink = regexp.MustCompile(`/archives/(\w+)/p(\d+)$`)
)

// Gateway implements chat.Gateway over the Slack Web API.
type Gateway struct {
	api *slack.Client
}

// NewGateway creates a new Slack gateway.
func NewGateway(token string) *Gateway {
	return &Gateway{api: slack.New(token)}
}

// NewGatewayWithAPI creates a gateway with a custom API client. Used for testing.
func NewGatewayWithAPI(api *slack.Client) *Gateway {
	return &Gateway{api: api}
}

// Ensure Gateway implements the chat.Gateway interface.
var _ chat.Gateway = (*Gateway)(nil)

// ChannelHistory fetches the channel's message history, paging until Slack
// reports no more.
func (g *Gateway) ChannelHistory(ctx context.Context, channelID string) ([]chat.Message, error) {
	var messages []chat.Message
	cursor := ""

	for {
		resp, err := g.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
			ChannelID: channelID,
			Limit:     historyPageSize,
			Cursor:    cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch history for channel %s: %w", channelID, err)
		}

		for _, msg := range resp.Messages {
			messages = append(messages, mapMessage(channelID, msg))
		}

		cursor = resp.ResponseMetaData.NextCursor
		if cursor == "" {
			break
		}
	}

	log.Debug("Fetched channel history", "channelID", channelID, "count", len(messages))
	return messages, nil
}

// FetchMessage fetches a single message by reference.
func (g *Gateway) FetchMessage(ctx context.Context, ref chat.MessageRef) (*chat.Message, error) {
	resp, err := g.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: ref.ChannelID,
		Latest:    ref.Timestamp,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message %s in %s: %w", ref.Timestamp, ref.ChannelID, err)
	}
	if len(resp.Messages) == 0 {
		return nil, nil
	}

	msg := mapMessage(ref.ChannelID, resp.Messages[0])
	return &msg, nil
}

// ListMembers fetches the workspace roster.
func (g *Gateway) ListMembers(ctx context.Context, teamID string) ([]chat.Member, error) {
	users, err := g.api.GetUsersContext(ctx, slack.GetUsersOptionTeamID(teamID))
	if err != nil {
		return nil, fmt.Errorf("failed to list members for team %s: %w", teamID, err)
	}

	members := make([]chat.Member, 0, len(users))
	for _, user := range users {
		if user.Deleted {
			continue
		}
		members = append(members, chat.Member{
			ID:          user.ID,
			Username:    user.Name,
			RealName:    user.RealName,
			DisplayName: user.Profile.DisplayName,
		})
	}
	return members, nil
}

// mapMessage converts a Slack message into the neutral chat.Message shape.
func mapMessage(channelID string, msg slack.Message) chat.Message {
	out := chat.Message{
		ChannelID:   channelID,
		Timestamp:   msg.Timestamp,
		AuthorID:    authorID(msg),
		AuthorIsBot: msg.BotID != "",
		TeamID:      msg.Team,
		CreatedAt:   timestampToTime(msg.Timestamp),
		Text:        msg.Text,
	}

	for _, att := range msg.Attachments {
		if out.CardText == "" && att.Text != "" {
			out.CardText = att.Text
			out.InvokerID = invokerFromAuthorLink(att.AuthorLink)
		}
		if out.ForwardedFrom == nil {
			out.ForwardedFrom = forwardRef(att)
		}
	}
	return out
}

func authorID(msg slack.Message) string {
	if msg.User != "" {
		return msg.User
	}
	return msg.BotID
}

// invokerFromAuthorLink pulls the user ID out of an attachment author link,
// which Slack renders for user-invoked cards.
func invokerFromAuthorLink(link string) string {
	m := rgxAuthorLink.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// forwardRef recovers the forwarded message's reference from a share
// attachment's permalink.
func forwardRef(att slack.Attachment) *chat.MessageRef {
	m := rgxPermalink.FindStringSubmatch(att.FromURL)
	if m == nil {
		return nil
	}
	raw := m[2]
	if len(raw) <= 6 {
		return nil
	}
	// Permalinks pack the timestamp without the dot: p1712345678000100.
	ts := raw[:len(raw)-6] + "." + raw[len(raw)-6:]
	return &chat.MessageRef{ChannelID: m[1], Timestamp: ts}
}

// timestampToTime converts a Slack "seconds.fraction" timestamp.
func timestampToTime(ts string) time.Time {
	secs := ts
	if i := strings.IndexByte(ts, '.'); i >= 0 {
		secs = ts[:i]
	}
	n, err := strconv.ParseInt(secs, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(n, 0).UTC()
}
