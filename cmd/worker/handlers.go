package main

import (
	"github.com/hibiken/asynq"

	maintenanceJob "anime-catalog/internal/domains/maintenance/job"
	"anime-catalog/internal/shared"
	"anime-catalog/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Maintenance handlers
	vacuum *maintenanceJob.VacuumHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		vacuum: maintenanceJob.NewVacuumHandler(c.MaintenanceService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Maintenance tasks
	mux.HandleFunc(shared.TypeMaintenanceVacuum, h.vacuum.ProcessTask)
}
