package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"anime-catalog/internal/infrastructure/database"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllTables(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`VACUUM ANALYZE "anime"`).WillReturnResult(pgxmock.NewResult("VACUUM", 0))
	mock.ExpectExec(`VACUUM ANALYZE "episodes"`).WillReturnResult(pgxmock.NewResult("VACUUM", 0))

	require.NoError(t, NewMaintenanceService(mock, time.Minute).Run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_ContinuesAfterFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`VACUUM ANALYZE "anime"`).WillReturnError(errors.New("lock timeout"))
	mock.ExpectExec(`VACUUM ANALYZE "episodes"`).WillReturnResult(pgxmock.NewResult("VACUUM", 0))

	err = NewMaintenanceService(mock, 0).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vacuum analyze anime")
	assert.NotContains(t, err.Error(), "vacuum analyze episodes")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_Timeout(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`VACUUM ANALYZE "episodes"`).WillReturnError(context.DeadlineExceeded)

	err = NewMaintenanceService(mock, time.Minute).Run(context.Background(), "episodes")
	assert.ErrorIs(t, err, database.ErrUnavailable)
}

func TestRun_UnknownTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	err = NewMaintenanceService(mock, time.Minute).Run(context.Background(), "users; DROP TABLE anime")
	assert.ErrorIs(t, err, ErrUnknownTable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
