package session

import (
	"context"
	"errors"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

var ErrSessionNotFound = errors.New("session not found")

// DefaultTTL is how long an untouched session is kept
const DefaultTTL = 30 * time.Minute

// SessionGateway holds the state of every open dashboard session.
// Update is atomic per session: fn sees the latest stored value and its changes are
// committed only when it returns nil.
type SessionGateway interface {
	Create(ctx context.Context, session entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Update(ctx context.Context, id string, fn func(session *entity.Session) error) (*entity.Session, error)
	Delete(ctx context.Context, id string) error

	// Sweep removes sessions not updated within idle and returns how many were removed
	Sweep(ctx context.Context, idle time.Duration) (int, error)
	Count(ctx context.Context) (int, error)

	Health(ctx context.Context) model.ComponentHealthStatus
}
