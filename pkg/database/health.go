package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is a snapshot of the connection pool.
type PoolStats struct {
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"max_open"`
	WaitCount int64 `json:"wait_count"`
	WaitedMs  int64 `json:"waited_ms"`
}

// HealthStatus reports database reachability plus pool statistics.
type HealthStatus struct {
	Status string    `json:"status"`
	PingMs int64     `json:"ping_ms"`
	Pool   PoolStats `json:"pool"`
}

// Health pings the database and snapshots the pool. On ping failure the
// returned status is populated alongside the error so callers can surface it.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status: "unhealthy",
			PingMs: time.Since(start).Milliseconds(),
		}, err
	}

	s := db.Stats()
	return &HealthStatus{
		Status: "healthy",
		PingMs: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:      s.OpenConnections,
			InUse:     s.InUse,
			Idle:      s.Idle,
			MaxOpen:   s.MaxOpenConnections,
			WaitCount: s.WaitCount,
			WaitedMs:  s.WaitDuration.Milliseconds(),
		},
	}, nil
}
