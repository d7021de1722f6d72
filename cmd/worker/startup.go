// cmd/worker/startup.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
	"github.com/rs/zerolog/log"
)

// HealthChecker performs startup health checks
type HealthChecker struct {
	redisClient *redis.Client
	inspector   *asynq.Inspector
}

func newHealthChecker(cfg *Config) *HealthChecker {
	return &HealthChecker{
		redisClient: redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			MaintNotificationsConfig: &maintnotifications.Config{
				Mode: maintnotifications.ModeDisabled,
			},
		}),
		inspector: asynq.NewInspector(cfg.Redis),
	}
}

// startServices performs health checks and starts the health endpoint
func startServices(cfg *Config) error {
	log.Info().Msg("🚀 Anime Catalog Worker Starting...")

	checker := newHealthChecker(cfg)
	if err := checker.checkAll(); err != nil {
		return err
	}

	go startHealthCheckServer(cfg.HealthAddr, checker)

	return nil
}

// checkAll runs all health checks
func (h *HealthChecker) checkAll() error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"Redis Connection", h.checkRedis},
		{"Asynq Queues", h.checkAsynq},
	}

	for _, check := range checks {
		if err := check.fn(); err != nil {
			log.Error().Err(err).Str("check", check.name).Msg("❌ Health check failed")
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Info().Str("check", check.name).Msg("✓ OK")
	}

	return nil
}

// checkRedis verifies Redis connection
func (h *HealthChecker) checkRedis() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return h.redisClient.Ping(ctx).Err()
}

// checkAsynq verifies asynq can read its queue metadata from Redis
func (h *HealthChecker) checkAsynq() error {
	_, err := h.inspector.Queues()
	return err
}

func (h *HealthChecker) Close() {
	_ = h.redisClient.Close()
	_ = h.inspector.Close()
}

// startHealthCheckServer starts HTTP server for health checks
func startHealthCheckServer(addr string, checker *HealthChecker) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthCheckHandler)
	mux.HandleFunc("/ready", readyCheckHandler(checker))

	log.Info().Str("addr", addr).Msg("[Health] Starting health check server")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("[Health] Failed to start")
	}
}

// healthCheckHandler handles /health endpoint
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"UP","service":"anime-catalog-worker"}`))
}

// readyCheckHandler handles /ready endpoint (Kubernetes readiness probe)
func readyCheckHandler(checker *HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := checker.checkRedis(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"NOT_READY"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"READY"}`))
	}
}
