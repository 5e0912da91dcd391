package store

import (
	"context"
	"fmt"
	"strings"

	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// NewSessionGateway builds the session store named by app.session.store.
// The returned close function releases the store connection.
func NewSessionGateway(ctx context.Context) (session.SessionGateway, func() error, error) {
	switch strings.ToLower(resource.GetStringOrDefault("app.session.store", StoreMemory)) {
	case StoreMemory:
		return session.NewMemorySessionGateway(), func() error { return nil }, nil
	case StoreRedis:
		client, err := NewRedisClient(ctx)
		if err != nil {
			return nil, nil, err
		}
		ttl := resource.GetDurationOrDefault("app.session.ttl", session.DefaultTTL)
		return session.NewRedisSessionGateway(client, ttl), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", resource.GetString("app.session.store"))
	}
}

// NewRedisClient connects to the Redis server under app.redis and checks it answers
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))
	if resource.IsSet("app.redis.key-prefix") {
		config.WithKeyPrefix(resource.GetString("app.redis.key-prefix"))
	}

	client := redis.NewClient(config)
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("fail to ping redis at %s: %w", config.Addr(), err)
	}
	return client, nil
}
