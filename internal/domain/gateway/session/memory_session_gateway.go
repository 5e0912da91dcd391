package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type MemorySessionGateway struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
	now      func() time.Time
}

var _ SessionGateway = (*MemorySessionGateway)(nil)

func NewMemorySessionGateway() *MemorySessionGateway {
	return &MemorySessionGateway{sessions: make(map[string]entity.Session), now: time.Now}
}

// WithClock replaces the time source used for UpdatedAt and Sweep
func (gateway *MemorySessionGateway) WithClock(now func() time.Time) *MemorySessionGateway {
	gateway.now = now
	return gateway
}

func (gateway *MemorySessionGateway) Create(_ context.Context, session entity.Session) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if _, exists := gateway.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}

	now := gateway.now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	gateway.sessions[session.ID] = session
	return nil
}

func (gateway *MemorySessionGateway) Get(_ context.Context, id string) (*entity.Session, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	session, ok := gateway.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (gateway *MemorySessionGateway) Update(_ context.Context, id string, fn func(session *entity.Session) error) (*entity.Session, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	session, ok := gateway.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := fn(&session); err != nil {
		return nil, err
	}

	session.ID = id
	session.UpdatedAt = gateway.now()
	gateway.sessions[id] = session
	return &session, nil
}

func (gateway *MemorySessionGateway) Delete(_ context.Context, id string) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	delete(gateway.sessions, id)
	return nil
}

func (gateway *MemorySessionGateway) Sweep(_ context.Context, idle time.Duration) (int, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	cutoff := gateway.now().Add(-idle)
	removed := 0
	for id, session := range gateway.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(gateway.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (gateway *MemorySessionGateway) Count(_ context.Context) (int, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	return len(gateway.sessions), nil
}

func (gateway *MemorySessionGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	count, _ := gateway.Count(ctx)
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"store":    "memory",
			"sessions": strconv.Itoa(count),
		},
	}
}
