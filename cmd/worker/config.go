package main

import (
	"anime-catalog/internal/shared/utils"
	"anime-catalog/pkg/container"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the worker
type Config struct {
	Redis           asynq.RedisClientOpt
	MaintenanceCron string
	HealthAddr      string
	Concurrency     int
}

// loadConfig reuses the application config loaded by the container
func loadConfig(c *container.Container) *Config {
	cfg := &Config{
		Redis: asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		MaintenanceCron: c.Config.Maintenance.WorkerCron,
		HealthAddr:      utils.GetEnvVariable("WORKER_HEALTH_ADDR", ":9999"),
		// VACUUM nặng, không cần chạy song song nhiều
		Concurrency: 2,
	}

	log.Info().
		Str("redis", cfg.Redis.Addr).
		Str("maintenance_cron", cfg.MaintenanceCron).
		Msg("[Config] Worker configuration loaded")

	return cfg
}
