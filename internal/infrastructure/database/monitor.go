package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anime-catalog/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolStats là snapshot các chỉ số của pgxpool
type PoolStats struct {
	AcquireCount         int64
	AcquireDuration      time.Duration
	AcquiredConns        int32
	CanceledAcquireCount int64
	EmptyAcquireCount    int64
	IdleConns            int32
	MaxConns             int32
	TotalConns           int32
}

var errStatsUnsupported = errors.New("pool does not expose statistics")

// Stats only works on a real *pgxpool.Pool
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}
	p, ok := db.Pool.(*pgxpool.Pool)
	if !ok {
		return nil, errStatsUnsupported
	}

	raw := p.Stat()
	return &PoolStats{
		AcquireCount:         raw.AcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
		AcquiredConns:        raw.AcquiredConns(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		EmptyAcquireCount:    raw.EmptyAcquireCount(),
		IdleConns:            raw.IdleConns(),
		MaxConns:             raw.MaxConns(),
		TotalConns:           raw.TotalConns(),
	}, nil
}

func calculateAvgDuration(totalDuration time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return totalDuration / time.Duration(count)
}

// poolWarnings: utilization > 80%, avg acquire > 100ms, cancel rate > 5%
func poolWarnings(s *PoolStats) []string {
	var warnings []string

	if s.MaxConns > 0 {
		utilization := float64(s.AcquiredConns) / float64(s.MaxConns) * 100
		if utilization > 80 {
			warnings = append(warnings, fmt.Sprintf("high pool utilization: %.1f%% (%d/%d)",
				utilization, s.AcquiredConns, s.MaxConns))
		}
	}

	if avg := calculateAvgDuration(s.AcquireDuration, s.AcquireCount); avg > 100*time.Millisecond {
		warnings = append(warnings, fmt.Sprintf("high acquire latency: %v", avg))
	}

	if s.AcquireCount > 0 && s.CanceledAcquireCount > 0 {
		cancelRate := float64(s.CanceledAcquireCount) / float64(s.AcquireCount) * 100
		if cancelRate > 5 {
			warnings = append(warnings, fmt.Sprintf("high acquire cancel rate: %.1f%%", cancelRate))
		}
	}

	return warnings
}

// MonitorPoolHealth logs pool pressure every interval until ctx is done.
// Chạy trong goroutine riêng.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	log := logger.Component("database")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats, err := db.Stats()
			if err != nil {
				log.Debug().Err(err).Msg("pool stats unavailable")
				continue
			}
			for _, w := range poolWarnings(stats) {
				log.Warn().
					Int32("total_conns", stats.TotalConns).
					Int32("idle_conns", stats.IdleConns).
					Msg(w)
			}

		case <-ctx.Done():
			log.Debug().Msg("Stopping pool health monitoring")
			return
		}
	}
}
