package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client,
		timeout: 2 * time.Second,
	}
}

// Check pings the server and reports the connection pool state
func (h *HealthChecker) Check(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	config := h.client.GetConfig()
	details := map[string]string{
		"address":  config.Addr(),
		"database": strconv.Itoa(config.Database),
	}

	start := time.Now()
	if err := h.client.Ping(ctx); err != nil {
		details["error"] = fmt.Sprintf("ping failed: %v", err)
		return HealthCheck{Status: StatusDown, Details: details}
	}
	details["ping_latency"] = time.Since(start).String()

	stats := h.client.Stats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	details["timeouts"] = strconv.FormatUint(uint64(stats.Timeouts), 10)

	return HealthCheck{Status: StatusUp, Details: details}
}
