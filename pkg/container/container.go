package container

import (
	"context"
	"fmt"
	"time"

	"anime-catalog/internal/config"
	"anime-catalog/internal/infrastructure/database"
	"anime-catalog/pkg/logger"

	animeHandler "anime-catalog/internal/domains/anime/handler"
	animeRepo "anime-catalog/internal/domains/anime/repository"
	animeService "anime-catalog/internal/domains/anime/service"

	episodeHandler "anime-catalog/internal/domains/episode/handler"
	episodeRepo "anime-catalog/internal/domains/episode/repository"
	episodeService "anime-catalog/internal/domains/episode/service"

	maintenanceHandler "anime-catalog/internal/domains/maintenance/handler"
	maintenanceJob "anime-catalog/internal/domains/maintenance/job"
	maintenanceService "anime-catalog/internal/domains/maintenance/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Thứ tự: Config -> DB -> Repositories -> Services -> Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	AnimeRepo   animeRepo.RepositoryInterface
	EpisodeRepo episodeRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	AnimeService       animeService.ServiceInterface
	EpisodeService     episodeService.ServiceInterface
	MaintenanceService maintenanceService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	AnimeHandler       *animeHandler.AnimeHandler
	EpisodeHandler     *episodeHandler.EpisodeHandler
	MaintenanceHandler *maintenanceHandler.MaintenanceHandler

	// MaintenanceCron is nil when MAINTENANCE_SCHEDULE is empty
	MaintenanceCron *maintenanceJob.CronRunner
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads config, connects to PostgreSQL, ensures the schema
// and wires every layer. Schema init happens here so no request is served
// before the tables exist.
func NewContainer() (*Container, error) {
	logger.Info("🔧 Initializing DI Container...", map[string]interface{}{})

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Info("✅ Config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	db := database.NewPostgresDB(cfg.Database)

	// Connect với timeout 30s
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	// ========================================
	// STEP 3: SCHEMA (idempotent)
	// ========================================
	if err := database.InitSchema(ctx, db.Pool); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	logger.Info("✅ Database connected, schema ready", map[string]interface{}{})

	c, err := New(cfg, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// New wires repositories, services and handlers on top of an already
// connected database. Tests build it with a pgxmock pool.
func New(cfg *config.Config, db *database.PostgresDB) (*Container, error) {
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	if err := c.initMaintenanceCron(); err != nil {
		return nil, err
	}

	logger.Info("🎉 DI Container initialized successfully", map[string]interface{}{})
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	queryTimeout := c.DB.Config.QueryTimeout

	c.AnimeRepo = animeRepo.NewPostgresRepository(pool, queryTimeout)
	c.EpisodeRepo = episodeRepo.NewPostgresRepository(pool, queryTimeout)
}

func (c *Container) initServices() {
	c.AnimeService = animeService.NewAnimeService(c.AnimeRepo)
	c.EpisodeService = episodeService.NewEpisodeService(c.EpisodeRepo)
	c.MaintenanceService = maintenanceService.NewMaintenanceService(c.DB.Pool, maintenanceService.DefaultTimeout)
}

func (c *Container) initHandlers() {
	c.AnimeHandler = animeHandler.NewAnimeHandler(c.AnimeService)
	c.EpisodeHandler = episodeHandler.NewEpisodeHandler(c.EpisodeService)
	c.MaintenanceHandler = maintenanceHandler.NewMaintenanceHandler(c.MaintenanceService)
}

func (c *Container) initMaintenanceCron() error {
	schedule := c.Config.Maintenance.Schedule
	if schedule == "" {
		logger.Info("Periodic maintenance disabled", map[string]interface{}{})
		return nil
	}

	runner, err := maintenanceJob.NewCronRunner(schedule, c.MaintenanceService)
	if err != nil {
		return fmt.Errorf("failed to init maintenance cron: %w", err)
	}
	c.MaintenanceCron = runner
	return nil
}

// Cleanup stops the maintenance cron and drains the pool.
// Gọi sau khi HTTP server đã shutdown xong.
func (c *Container) Cleanup() {
	logger.Info("🧹 Cleaning up container resources...", map[string]interface{}{})

	if c.MaintenanceCron != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		c.MaintenanceCron.Stop(ctx)
		cancel()
	}

	if c.DB != nil {
		c.DB.Close()
		logger.Info("✅ Database connections closed", map[string]interface{}{})
	}
}
