package clock

import (
	"sync"
	"time"
)

// Mock — управляемые часы для тестов и детерминированных прогонов.
type Mock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMock создаёт часы, стоящие на start.
func NewMock(start time.Time) *Mock {
	return &Mock{current: start}
}

func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set переставляет часы на t.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance сдвигает часы вперёд на d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
