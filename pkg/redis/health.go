package redis

import (
	"context"
	"strconv"
	"time"
)

// Health pings the server and reports connection pool statistics
func (c *Client) Health(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.rdb.Ping(ctx).Err()
	latency := time.Since(start)

	stats := c.rdb.PoolStats()
	details := map[string]string{
		"address":     c.config.Addr(),
		"database":    strconv.Itoa(c.config.Database),
		"latency":     latency.String(),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
	}

	if err != nil {
		details["error"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}
	return HealthCheck{Status: StatusUp, Details: details}
}
