package pubsub

// Client publishes and decodes asynchronous work items.
type Client interface {
	SendMessage(topic string, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
