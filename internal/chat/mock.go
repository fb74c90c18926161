package chat

import (
	"context"
	"sync"
)

// MockGateway is a mock implementation of the Gateway interface for testing.
// It is safe for concurrent use.
type MockGateway struct {
	mu sync.Mutex

	// Spies for method calls
	ChannelHistoryFunc func(ctx context.Context, channelID string) ([]Message, error)
	FetchMessageFunc   func(ctx context.Context, ref MessageRef) (*Message, error)
	ListMembersFunc    func(ctx context.Context, teamID string) ([]Member, error)

	// Call records
	ChannelHistoryCalls []string
	FetchMessageCalls   []MessageRef
	ListMembersCalls    []string
}

// NewMockGateway creates a new mock instance.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) ChannelHistory(ctx context.Context, channelID string) ([]Message, error) {
	m.mu.Lock()
	m.ChannelHistoryCalls = append(m.ChannelHistoryCalls, channelID)
	fn := m.ChannelHistoryFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, channelID)
	}
	return []Message{}, nil
}

func (m *MockGateway) FetchMessage(ctx context.Context, ref MessageRef) (*Message, error) {
	m.mu.Lock()
	m.FetchMessageCalls = append(m.FetchMessageCalls, ref)
	fn := m.FetchMessageFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, ref)
	}
	return nil, nil
}

func (m *MockGateway) ListMembers(ctx context.Context, teamID string) ([]Member, error) {
	m.mu.Lock()
	m.ListMembersCalls = append(m.ListMembersCalls, teamID)
	fn := m.ListMembersFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, teamID)
	}
	return []Member{}, nil
}
