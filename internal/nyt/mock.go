package nyt

import (
	"context"
	"sync"
	"time"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetMetadataFunc func(ctx context.Context, day time.Time) (Metadata, error)

	// Call records
	GetMetadataCalls []time.Time
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetMetadataCalls = nil
}

func (m *MockClient) GetMetadata(ctx context.Context, day time.Time) (Metadata, error) {
	m.mu.Lock()
	m.GetMetadataCalls = append(m.GetMetadataCalls, day)
	fn := m.GetMetadataFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, day)
	}
	return Metadata{}, nil
}
