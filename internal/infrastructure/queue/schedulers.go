package queue

import (
	"fmt"
	"time"

	"anime-catalog/internal/domains/maintenance/job"
	"anime-catalog/internal/shared"
	"anime-catalog/pkg/logger"

	"github.com/hibiken/asynq"
)

// Scheduler đăng ký các periodic task vào Redis thông qua asynq.
// Nhiều worker cùng chạy vẫn chỉ enqueue một task mỗi lần (asynq dedupe theo entry).
type Scheduler struct {
	scheduler       *asynq.Scheduler
	maintenanceCron string
}

func NewScheduler(redisOpt asynq.RedisClientOpt, maintenanceCron string) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler:       scheduler,
		maintenanceCron: maintenanceCron,
	}
}

// RegisterMaintenanceJobs registers every scheduled job. An empty cron disables maintenance.
func (s *Scheduler) RegisterMaintenanceJobs() error {
	if s.maintenanceCron == "" {
		logger.Info("Scheduled maintenance disabled (WORKER_MAINTENANCE_CRON is empty)", map[string]interface{}{})
		return nil
	}

	return s.registerVacuumAnalyzeJob()
}

// ================================================
// JOB: VACUUM ANALYZE anime + episodes
// ================================================
func (s *Scheduler) registerVacuumAnalyzeJob() error {
	task, err := job.NewVacuumTask()
	if err != nil {
		return err
	}

	entryID, err := s.scheduler.Register(
		s.maintenanceCron,
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(2),
		asynq.Timeout(15*time.Minute),
		// cùng lúc chỉ một task maintenance trong queue
		asynq.Unique(time.Hour),
	)
	if err != nil {
		logger.Error("Failed to register VacuumAnalyze job", err)
		return fmt.Errorf("register %s: %w", shared.TypeMaintenanceVacuum, err)
	}

	logger.Info("✓ Registered VacuumAnalyze", map[string]interface{}{
		"cron":     s.maintenanceCron,
		"entry_id": entryID,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
