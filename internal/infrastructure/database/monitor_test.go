package database

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolWarnings(t *testing.T) {
	tests := []struct {
		name  string
		stats PoolStats
		want  int
	}{
		{name: "healthy", stats: PoolStats{MaxConns: 5, AcquiredConns: 1, AcquireCount: 100, AcquireDuration: time.Second}},
		{name: "exhausted", stats: PoolStats{MaxConns: 5, AcquiredConns: 5}, want: 1},
		{name: "slow acquire", stats: PoolStats{MaxConns: 5, AcquireCount: 10, AcquireDuration: 5 * time.Second}, want: 1},
		{name: "canceled acquires", stats: PoolStats{MaxConns: 5, AcquireCount: 10, CanceledAcquireCount: 3}, want: 1},
		{name: "zero max conns", stats: PoolStats{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, poolWarnings(&tt.stats), tt.want)
		})
	}
}

func TestStats_MockPool(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	_, err = NewPostgresDBWithPool(testConfig(), mock).Stats()
	assert.ErrorIs(t, err, errStatsUnsupported)

	_, err = NewPostgresDB(testConfig()).Stats()
	assert.Error(t, err)
}

func TestMonitorPoolHealth_StopsOnCancel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	db := NewPostgresDBWithPool(testConfig(), mock)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		db.MonitorPoolHealth(ctx, 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
