package main

import (
	"context"

	"anime-catalog/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// asynqServer wraps asynq.Server with additional functionality
type asynqServer struct {
	*asynq.Server
}

func newAsynqServer(cfg *Config) *asynq.Server {
	return asynq.NewServer(
		cfg.Redis,
		asynq.Config{
			Queues: map[string]int{
				shared.QueueMaintenance: 5,
				shared.QueueDefault:     1,
			},
			Concurrency: cfg.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("[Asynq] ❌ Task failed")
			}),
		},
	)
}

// setupAsynqServer creates and configures the Asynq server
func setupAsynqServer(cfg *Config, handlers *HandlerRegistry) *asynqServer {
	// Create ServeMux
	mux := asynq.NewServeMux()

	// Register all handlers
	handlers.RegisterHandlers(mux)

	srv := newAsynqServer(cfg)

	// Start server in goroutine
	go func() {
		log.Info().Msg("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("[Worker] Failed")
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown waits for in-flight tasks (asynq ShutdownTimeout, default 8s)
func (s *asynqServer) Shutdown() {
	log.Info().Msg("[Worker] Shutting down...")
	s.Server.Shutdown()
	log.Info().Msg("[Worker] ✓ Gracefully stopped")
}
