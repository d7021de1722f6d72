package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"anime-catalog/internal/infrastructure/database"

	"github.com/robfig/cron/v3"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App         AppConfig
	Database    *database.DBConfig
	Redis       RedisConfig
	Maintenance MaintenanceConfig
	HTTP        HTTPConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
	Port        string
	Version     string
	LogLevel    string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// MaintenanceConfig controls the periodic VACUUM ANALYZE run.
type MaintenanceConfig struct {
	// Schedule is a robfig/cron spec used by the API process; empty disables it.
	Schedule string
	// WorkerCron is the cron expression registered by cmd/worker with asynq.
	WorkerCron string
}

type HTTPConfig struct {
	StaticDir      string
	AllowedOrigins []string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	dbCfg, err := LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Anime Catalog API"),
			Environment: env,
			Port:        getEnv("PORT", getEnv("APP_PORT", "3000")),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: dbCfg,
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Maintenance: MaintenanceConfig{
			Schedule:   lookupEnv("MAINTENANCE_SCHEDULE", "@every 24h"),
			WorkerCron: getEnv("WORKER_MAINTENANCE_CRON", "0 4 * * *"),
		},
		HTTP: HTTPConfig{
			StaticDir:      getEnv("STATIC_DIR", "web"),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.App.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", c.App.Port)
	}

	if c.Database == nil {
		return fmt.Errorf("database config is missing")
	}
	if c.Database.URL == "" && c.Database.Host == "" {
		return fmt.Errorf("DATABASE_URL or DB_HOST must be set")
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
	}

	if c.App.Environment == "production" && c.Database.URL == "" && c.Database.Password == "" {
		return fmt.Errorf("DATABASE_URL or DB_PASSWORD must be set in production")
	}

	if c.Maintenance.Schedule != "" {
		if _, err := cron.ParseStandard(c.Maintenance.Schedule); err != nil {
			return fmt.Errorf("invalid MAINTENANCE_SCHEDULE: %w", err)
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// lookupEnv giống getEnv nhưng giữ lại giá trị rỗng nếu biến được set (dùng để tắt tính năng)
func lookupEnv(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
