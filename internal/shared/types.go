package shared

import "time"

// Asynq task types
const (
	TypeMaintenanceVacuum = "maintenance:vacuum_analyze"
)

// Asynq queues
const (
	QueueMaintenance = "maintenance"
	QueueDefault     = "default"
)

// MaintenancePayload - payload của task maintenance:vacuum_analyze
// Tables rỗng => chạy cho tất cả bảng của catalog
type MaintenancePayload struct {
	Tables      []string  `json:"tables,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt,omitempty"`
}
