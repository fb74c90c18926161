package metrics

import "sync"

// MockMetrics is a no-op implementation of the Metrics interface that
// records call counts. It is safe for concurrent use.
type MockMetrics struct {
	mu sync.Mutex

	MessagesScannedCalls int
	ResultsImportedCalls int
	ImportFailuresCalls  int
	MetadataProbesCalls  int
	ImportDurations      []float64
	StartupTimes         []float64
}

// NewMockMetrics creates a new mock instance.
func NewMockMetrics() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) IncMessagesScanned() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MessagesScannedCalls++
}

func (m *MockMetrics) IncResultsImported() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResultsImportedCalls++
}

func (m *MockMetrics) IncImportFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImportFailuresCalls++
}

func (m *MockMetrics) IncMetadataProbes() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MetadataProbesCalls++
}

func (m *MockMetrics) ObserveImportDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImportDurations = append(m.ImportDurations, duration)
}

func (m *MockMetrics) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, duration)
}
