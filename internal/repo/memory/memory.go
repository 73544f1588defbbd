package memory

import (
	"context"
	"sync"

	"github.com/hamed0406/apiprobe/internal/domain"
)

type Store struct {
	mu      sync.RWMutex
	results []domain.ProbeResult
}

func New() *Store {
	return &Store{results: make([]domain.ProbeResult, 0, 64)}
}

func (m *Store) Append(ctx context.Context, r domain.ProbeResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

// List returns a copy in insertion order.
func (m *Store) List(ctx context.Context) ([]domain.ProbeResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.ProbeResult, len(m.results))
	copy(out, m.results)
	return out, nil
}
