package store

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/pkg/resource"
)

func loadProperties(t *testing.T, yml string) {
	t.Helper()
	require.NoError(t, resource.InitFromReader(strings.NewReader(yml)))
}

func TestNewSessionGateway_Memory(t *testing.T) {
	loadProperties(t, "app:\n  session:\n    store: memory\n")

	gateway, closeStore, err := NewSessionGateway(context.Background())

	require.NoError(t, err)
	assert.IsType(t, &session.MemorySessionGateway{}, gateway)
	assert.NoError(t, closeStore())
}

func TestNewSessionGateway_Redis(t *testing.T) {
	srv := miniredis.RunT(t)
	loadProperties(t, `
app:
  session:
    store: redis
    ttl: 10m
  redis:
    host: `+srv.Host()+`
    port: `+srv.Port()+`
    key-prefix: "test:"
`)

	gateway, closeStore, err := NewSessionGateway(context.Background())
	require.NoError(t, err)
	defer closeStore()

	require.NoError(t, gateway.Create(context.Background(), entity.Session{ID: "abc", Lang: "en"}))
	assert.True(t, srv.Exists("test:session:abc"))
	assert.Equal(t, "10m0s", srv.TTL("test:session:abc").String())
}

func TestNewSessionGateway_RedisUnreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	port, err := strconv.Atoi(srv.Port())
	require.NoError(t, err)
	srv.Close()

	loadProperties(t, "app:\n  session:\n    store: redis\n  redis:\n    host: 127.0.0.1\n    port: "+strconv.Itoa(port)+"\n")

	_, _, err = NewSessionGateway(context.Background())
	assert.ErrorContains(t, err, "fail to ping redis")
}

func TestNewSessionGateway_Unknown(t *testing.T) {
	loadProperties(t, "app:\n  session:\n    store: etcd\n")

	_, _, err := NewSessionGateway(context.Background())
	assert.ErrorContains(t, err, `unknown session store "etcd"`)
}
