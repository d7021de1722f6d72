package job

import (
	"context"
	"fmt"
	"time"

	"anime-catalog/internal/domains/maintenance/service"
	"anime-catalog/internal/shared"
	"anime-catalog/internal/shared/utils"
	"anime-catalog/pkg/logger"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// VacuumHandler xử lý task maintenance:vacuum_analyze trên worker
type VacuumHandler struct {
	service service.ServiceInterface
}

func NewVacuumHandler(svc service.ServiceInterface) *VacuumHandler {
	return &VacuumHandler{
		service: svc,
	}
}

// NewVacuumTask builds the task enqueued by the scheduler (and by hand, e.g. asynq CLI)
func NewVacuumTask(tables ...string) (*asynq.Task, error) {
	payload := shared.MaintenancePayload{Tables: tables}
	data, err := utils.MarshalTask(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(shared.TypeMaintenanceVacuum, data), nil
}

func (h *VacuumHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.MaintenancePayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		logger.Error("Unmarshal maintenance payload failed", err)
		// payload hỏng thì retry cũng vô ích
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	log.Info().
		Strs("tables", payload.Tables).
		Time("started_at", time.Now()).
		Msg("Starting scheduled maintenance")

	if err := h.service.Run(ctx, payload.Tables...); err != nil {
		logger.Error("Scheduled maintenance failed", err)
		return err
	}
	return nil
}
