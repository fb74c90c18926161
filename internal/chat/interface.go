package chat

import "context"

// Gateway is the read surface of the chat platform: message history, single
// message fetch, and the member roster. The import pipeline treats it purely
// as a data source.
type Gateway interface {
	ChannelHistory(ctx context.Context, channelID string) ([]Message, error)
	FetchMessage(ctx context.Context, ref MessageRef) (*Message, error)
	ListMembers(ctx context.Context, teamID string) ([]Member, error)
}
