package chat

import "time"

// Message is a platform-neutral view of a chat message, carrying only what
// the import pipeline needs.
type Message struct {
	ChannelID   string
	Timestamp   string
	AuthorID    string
	AuthorIsBot bool
	TeamID      string
	CreatedAt   time.Time

	// Text is the plain message body.
	Text string
	// CardText is the text of the first structured display block attached to
	// the message, if any. Share cards live here, not in Text.
	CardText string
	// InvokerID is the user the structured card was rendered for, when the
	// platform exposes one.
	InvokerID string

	// ForwardedFrom links to the message this one forwards, if any.
	ForwardedFrom *MessageRef
}

// MessageRef identifies a single message on the platform.
type MessageRef struct {
	ChannelID string
	Timestamp string
}

// Member is one entry of a community roster. Name fields are listed in the
// priority order used for display-name resolution.
type Member struct {
	ID          string
	Username    string
	RealName    string
	DisplayName string
}
