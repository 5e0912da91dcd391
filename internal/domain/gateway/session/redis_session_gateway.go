package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

const (
	sessionKeyPrefix  = "session:"
	maxUpdateAttempts = 5
)

// RedisSessionGateway stores sessions as JSON under a TTL that is renewed on every write,
// so idle sessions expire without a sweep.
type RedisSessionGateway struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

var _ SessionGateway = (*RedisSessionGateway)(nil)

func NewRedisSessionGateway(client *redis.Client, ttl time.Duration) *RedisSessionGateway {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisSessionGateway{client: client, ttl: ttl, now: time.Now}
}

func (gateway *RedisSessionGateway) key(id string) string {
	return gateway.client.Key(sessionKeyPrefix + id)
}

func (gateway *RedisSessionGateway) Create(ctx context.Context, session entity.Session) error {
	now := gateway.now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", session.ID, err)
	}

	created, err := gateway.client.GetClient().SetNX(ctx, gateway.key(session.ID), data, gateway.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create session %s: %w", session.ID, err)
	}
	if !created {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	return nil
}

func (gateway *RedisSessionGateway) Get(ctx context.Context, id string) (*entity.Session, error) {
	var session entity.Session
	found, err := gateway.client.GetJSON(ctx, gateway.key(id), &session)
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

// Update runs fn inside WATCH/MULTI and retries when another writer touched the session first
func (gateway *RedisSessionGateway) Update(ctx context.Context, id string, fn func(session *entity.Session) error) (*entity.Session, error) {
	key := gateway.key(id)
	var updated entity.Session

	txf := func(tx *goredis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return err
		}

		var session entity.Session
		if err := json.Unmarshal(data, &session); err != nil {
			return fmt.Errorf("failed to unmarshal session %s: %w", id, err)
		}

		if err := fn(&session); err != nil {
			return err
		}
		session.ID = id
		session.UpdatedAt = gateway.now()

		encoded, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session %s: %w", id, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, gateway.ttl)
			return nil
		})
		if err == nil {
			updated = session
		}
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := gateway.client.Watch(ctx, txf, key)
		if err == nil {
			return &updated, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed to update session %s: too much contention", id)
}

func (gateway *RedisSessionGateway) Delete(ctx context.Context, id string) error {
	return gateway.client.Delete(ctx, gateway.key(id))
}

// Sweep is a no-op, Redis expires idle sessions through the key TTL
func (gateway *RedisSessionGateway) Sweep(context.Context, time.Duration) (int, error) {
	return 0, nil
}

func (gateway *RedisSessionGateway) Count(ctx context.Context) (int, error) {
	return gateway.client.CountKeys(ctx, gateway.key("*"))
}

func (gateway *RedisSessionGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.client.Health(ctx)

	details := make(map[string]string, len(check.Details)+2)
	for key, value := range check.Details {
		details[key] = value
	}
	details["store"] = "redis"

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
		if count, err := gateway.Count(ctx); err == nil {
			details["sessions"] = strconv.Itoa(count)
		}
	}

	return model.ComponentHealthStatus{Status: status, Details: details}
}
