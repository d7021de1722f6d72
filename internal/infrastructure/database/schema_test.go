package database

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").WithArgs(schemaLockID).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS anime").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec("ALTER TABLE anime ADD COLUMN IF NOT EXISTS updated_at").WillReturnResult(pgxmock.NewResult("ALTER TABLE", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS episodes").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_episodes_anime_id_number").WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_anime_created_at").WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))
	mock.ExpectCommit()

	require.NoError(t, InitSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchema_CascadeDeclared(t *testing.T) {
	assert.Contains(t, schemaStatements[2], "REFERENCES anime(id) ON DELETE CASCADE")
	assert.Contains(t, schemaStatements[2], "anime_id   INTEGER NOT NULL")
}

func TestInitSchema_FailureRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").WithArgs(schemaLockID).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS anime").WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err = InitSchema(context.Background(), mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema statement 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
