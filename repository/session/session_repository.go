package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/muhammadheryan/compose-demos/model"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Repository stores flow states by session id.
type Repository interface {
	Get(ctx context.Context, sessionID string) (*model.FlowState, error)
	Save(ctx context.Context, sessionID string, state *model.FlowState, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

type entry struct {
	state     model.FlowState
	expiresAt time.Time
}

type memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryRepository keeps sessions in process memory.
func NewMemoryRepository() Repository {
	return &memory{entries: make(map[string]entry), now: time.Now}
}

func (m *memory) Get(_ context.Context, sessionID string) (*model.FlowState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.entries, sessionID)
		return nil, ErrNotFound
	}
	state := e.state
	return &state, nil
}

func (m *memory) Save(_ context.Context, sessionID string, state *model.FlowState, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := entry{state: *state}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.entries[sessionID] = e
	return nil
}

func (m *memory) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, sessionID)
	return nil
}
