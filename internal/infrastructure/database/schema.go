package database

import (
	"context"
	"fmt"

	pkgdb "anime-catalog/pkg/database"
	"anime-catalog/pkg/logger"

	"github.com/jackc/pgx/v5"
)

// schemaLockID serializes schema initialization across instances starting at the same time.
const schemaLockID int64 = 7_311_204_001

// schemaStatements run in order inside one transaction. Every statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS anime (
		id          SERIAL PRIMARY KEY,
		title       VARCHAR(255) NOT NULL,
		description TEXT,
		poster_url  VARCHAR(255),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// older deployments created anime without updated_at
	`ALTER TABLE anime ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
	`CREATE TABLE IF NOT EXISTS episodes (
		id         SERIAL PRIMARY KEY,
		anime_id   INTEGER NOT NULL REFERENCES anime(id) ON DELETE CASCADE,
		number     INTEGER NOT NULL,
		vk_url     VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_episodes_anime_id_number ON episodes (anime_id, number)`,
	`CREATE INDEX IF NOT EXISTS idx_anime_created_at ON anime (created_at DESC)`,
}

// InitSchema tạo bảng anime/episodes nếu chưa tồn tại. Gọi trước khi server nhận request.
func InitSchema(ctx context.Context, db pkgdb.TxBeginner) error {
	log := logger.Component("database")

	err := pkgdb.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", schemaLockID); err != nil {
			return fmt.Errorf("acquire schema lock: %w", err)
		}
		for i, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema statement %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return Classify(err)
	}

	log.Info().Msg("Tables created or already exist")
	return nil
}
