package job

import (
	"context"
	"fmt"

	"anime-catalog/internal/domains/maintenance/service"
	"anime-catalog/pkg/logger"

	"github.com/robfig/cron/v3"
)

// CronRunner chạy maintenance định kỳ ngay trong process API.
// Lỗi chỉ được log, không bao giờ ảnh hưởng request.
type CronRunner struct {
	cron     *cron.Cron
	service  service.ServiceInterface
	schedule string
}

// NewCronRunner accepts standard 5-field specs and descriptors like "@every 24h".
// SkipIfStillRunning keeps runs from overlapping when a vacuum takes longer than the interval.
func NewCronRunner(schedule string, svc service.ServiceInterface) (*CronRunner, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	r := &CronRunner{cron: c, service: svc, schedule: schedule}
	if _, err := c.AddFunc(schedule, r.runOnce); err != nil {
		return nil, fmt.Errorf("invalid maintenance schedule %q: %w", schedule, err)
	}
	return r, nil
}

func (r *CronRunner) runOnce() {
	if err := r.service.Run(context.Background()); err != nil {
		logger.Error("Periodic maintenance failed", err)
	}
}

func (r *CronRunner) Start() {
	r.cron.Start()
	logger.Info("Maintenance cron started", map[string]interface{}{
		"schedule": r.schedule,
	})
}

// Stop waits for a running maintenance to finish or ctx to expire
func (r *CronRunner) Stop(ctx context.Context) {
	done := r.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		logger.Warn("Maintenance still running at shutdown", map[string]interface{}{})
	}
}
