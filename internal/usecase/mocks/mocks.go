package mocks

import (
	"fmt"
	"sync"
)

// MockIDGenerator is a mock implementation of IDGenerator. Without a
// GenerateFunc it hands out deterministic sequential ids, which makes
// assertions on created records stable.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

// NewMockIDGenerator creates a new MockIDGenerator.
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%04d", m.next)
}
