package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anime-catalog/internal/infrastructure/database"
	"anime-catalog/pkg/container"
	"anime-catalog/pkg/logger"

	"github.com/rs/zerolog/log"
)

func Serve() {
	// ========================================
	// 1. BUILD DI CONTAINER
	// ========================================
	// Connect DB + init schema trước khi nhận request
	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize container")
	}

	// Ensure cleanup on shutdown
	defer appContainer.Cleanup()

	if appContainer.Config.IsProduction() {
		logger.Warn("Mutating routes (POST/PUT/DELETE, /maintenance) have no authentication", map[string]interface{}{})
	}

	// ========================================
	// 2. SETUP ROUTER
	// ========================================
	router := SetupRouter(appContainer)

	// ========================================
	// 3. CONFIGURE HTTP SERVER
	// ========================================
	port := appContainer.Config.App.Port
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// ========================================
	// 4. START SERVER (NON-BLOCKING)
	// ========================================
	go func() {
		logger.Info("🚀 Server starting", map[string]interface{}{
			"port":   port,
			"env":    appContainer.Config.App.Environment,
			"health": fmt.Sprintf("http://localhost:%s/health", port),
		})

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("❌ Failed to start server")
		}
	}()

	if appContainer.MaintenanceCron != nil {
		appContainer.MaintenanceCron.Start()
	}

	stopMonitor := startPoolMonitor(appContainer.DB, appContainer.Config.Database.HealthCheckPeriod)

	// ========================================
	// 5. GRACEFUL SHUTDOWN
	// ========================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...", map[string]interface{}{})

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Shutdown chờ request đang chạy xong, sau đó defer Cleanup đóng pool
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("⚠️  Server forced to shutdown", err)
	}

	// Monitor phải dừng hẳn trước khi Cleanup đóng pool
	stopMonitor()

	logger.Info("✅ Server exited gracefully", map[string]interface{}{})
}

// startPoolMonitor runs MonitorPoolHealth in the background. The returned
// stop function blocks until the goroutine has exited.
func startPoolMonitor(db *database.PostgresDB, interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		db.MonitorPoolHealth(ctx, interval)
	}()

	return func() {
		cancel()
		<-done
	}
}
