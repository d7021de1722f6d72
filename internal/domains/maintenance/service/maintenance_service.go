package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"anime-catalog/internal/infrastructure/database"
	"anime-catalog/pkg/logger"

	"github.com/lib/pq"
)

// CatalogTables là các bảng được VACUUM ANALYZE, theo thứ tự
var CatalogTables = []string{"anime", "episodes"}

// DefaultTimeout bounds one maintenance run (all tables)
const DefaultTimeout = 10 * time.Minute

var ErrUnknownTable = errors.New("table is not part of the catalog")

type ServiceInterface interface {
	// Run executes VACUUM ANALYZE on the given tables (all catalog tables when empty).
	// Every table is attempted; the returned error joins the per-table failures.
	Run(ctx context.Context, tables ...string) error
}

type maintenanceService struct {
	db      database.Querier
	timeout time.Duration
}

func NewMaintenanceService(db database.Querier, timeout time.Duration) ServiceInterface {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &maintenanceService{
		db:      db,
		timeout: timeout,
	}
}

func (s *maintenanceService) Run(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		tables = CatalogTables
	}
	for _, t := range tables {
		if !slices.Contains(CatalogTables, t) {
			return fmt.Errorf("%w: %q", ErrUnknownTable, t)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log := logger.Component("maintenance")
	start := time.Now()

	var errs []error
	for _, t := range tables {
		// VACUUM không chạy được trong transaction, Exec không tham số => simple protocol
		if _, err := s.db.Exec(ctx, "VACUUM ANALYZE "+pq.QuoteIdentifier(t)); err != nil {
			log.Error().Err(err).Str("table", t).Msg("vacuum analyze failed")
			errs = append(errs, fmt.Errorf("vacuum analyze %s: %w", t, database.Classify(err)))
			continue
		}
		log.Debug().Str("table", t).Msg("vacuum analyze done")
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Info().
		Strs("tables", tables).
		Dur("duration", time.Since(start)).
		Msg("maintenance completed")
	return nil
}
