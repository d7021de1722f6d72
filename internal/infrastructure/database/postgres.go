package database

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"anime-catalog/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig chứa tất cả các thông tin cấu hình để kết nối PostgreSQL
type DBConfig struct {
	// URL (DATABASE_URL) được ưu tiên hơn các field rời bên dưới
	URL      string
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	// SSLInsecure: dùng TLS nhưng không verify certificate của server
	SSLInsecure bool

	// Connection Pool Configuration
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Retry Configuration (chỉ dùng lúc startup)
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration

	// QueryTimeout giới hạn mỗi statement trong request path
	QueryTimeout time.Duration
}

// PostgresDB là wrapper quản lý connection pool và lifecycle của database
type PostgresDB struct {
	Pool   Pool
	Config *DBConfig
}

// NewPostgresDB tạo instance mới của PostgresDB, Pool sẽ được set khi Connect() được gọi
func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
		Pool:   nil,
	}
}

// NewPostgresDBWithPool wraps an existing pool (tests, tooling).
func NewPostgresDBWithPool(config *DBConfig, pool Pool) *PostgresDB {
	return &PostgresDB{
		Config: config,
		Pool:   pool,
	}
}

// buildConnectionString trả về DATABASE_URL nếu có, ngược lại ghép từ các field rời
func (db *PostgresDB) buildConnectionString() string {
	if db.Config.URL != "" {
		return db.Config.URL
	}

	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(db.Config.Username, db.Config.Password),
		Host:   db.Config.Host + ":" + strconv.Itoa(db.Config.Port),
		Path:   "/" + db.Config.DBName,
	}
	if db.Config.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{db.Config.SSLMode}}.Encode()
	}
	return u.String()
}

// configurePool tạo và cấu hình connection pool config
func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	if db.Config.SSLInsecure {
		// Managed Postgres thường dùng certificate self-signed
		config.ConnConfig.TLSConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		config.ConnConfig.Fallbacks = nil
	}

	return config, nil
}

// connectWithRetry thực hiện retry logic với exponential backoff
// Attempt 1: 1s, attempt 2: 2s, attempt 3: 4s ...
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	log := logger.Component("database")

	var lastErr error
	maxRetries := db.Config.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Info().Int("attempt", attempt).Int("max_attempts", maxRetries).Msg("Connecting to PostgreSQL")

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, err := pgxpool.NewWithConfig(connectCtx, config)
		if err == nil {
			err = pool.Ping(connectCtx)
			if err != nil {
				pool.Close()
			}
		}
		cancel()

		if err == nil {
			log.Info().Int("attempt", attempt).Msg("Connected to PostgreSQL")
			return pool, nil
		}

		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("Connection attempt failed")

		if attempt < maxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info().Dur("delay", delay).Msg("Retrying")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
}

// Connect: configure -> retry -> assign pool
func (db *PostgresDB) Connect(ctx context.Context) error {
	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", Classify(err))
	}

	db.Pool = pool
	return nil
}

// HealthCheck chạy một query đơn giản; bất kỳ lỗi nào (kể cả timeout) đều là unhealthy
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := db.Pool.Exec(healthCtx, "SELECT 1"); err != nil {
		return fmt.Errorf("database health query failed: %w", Classify(err))
	}

	if p, ok := db.Pool.(*pgxpool.Pool); ok {
		stats := p.Stat()
		log := logger.Component("database")
		log.Debug().
			Int32("total_conns", stats.TotalConns()).
			Int32("idle_conns", stats.IdleConns()).
			Int32("acquired_conns", stats.AcquiredConns()).
			Msg("Health check passed")
	}

	return nil
}

// Close drains the pool. pgxpool.Close waits for acquired connections to be released.
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
		db.Pool = nil
	}
}
