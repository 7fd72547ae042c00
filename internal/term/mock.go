package term

import (
	"context"
	"sync"
)

// MockSource is a Source that replays queued inputs, one batch per Read.
// Once drained it blocks until ctx is done.
type MockSource struct {
	mu      sync.Mutex
	batches [][]Input
	wake    chan struct{}
}

var _ Source = (*MockSource)(nil)

// NewMockSource creates a MockSource with the given batches queued.
func NewMockSource(batches ...[]Input) *MockSource {
	return &MockSource{batches: batches, wake: make(chan struct{}, 1)}
}

// Push queues another batch.
func (m *MockSource) Push(inputs ...Input) {
	m.mu.Lock()
	m.batches = append(m.batches, inputs)
	m.mu.Unlock()
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Remaining returns the number of batches not yet read.
func (m *MockSource) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.batches)
}

// Read implements Source.
func (m *MockSource) Read(ctx context.Context) ([]Input, error) {
	for {
		m.mu.Lock()
		if len(m.batches) > 0 {
			next := m.batches[0]
			m.batches = m.batches[1:]
			m.mu.Unlock()
			return next, nil
		}
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-m.wake:
		}
	}
}
