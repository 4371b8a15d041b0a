package store

import (
	"context"
	"sync"

	"cema-admin/internal/domain"
)

// Memory is an in-process Adapter used by tests and the memory driver.
type Memory struct {
	mu   sync.Mutex
	docs map[string][]byte
	subs map[chan Event]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		docs: make(map[string][]byte),
		subs: make(map[chan Event]struct{}),
	}
}

func (m *Memory) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.docs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Write(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = stored

	// Send while holding mu: Watch cleanup closes channels under the same
	// lock, so a send can never follow a close.
	for ch := range m.subs {
		select {
		case ch <- Event{Key: key, Value: stored}:
		default:
			// Subscriber is behind; it reloads from Read on the next event.
		}
	}
	return nil
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.subs[ch] = struct{}{}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, ch)
		close(ch)
		m.mu.Unlock()
	}()
	return ch, nil
}
