package repository

import (
	"context"
	"testing"
	"time"

	"anime-catalog/internal/domains/episode/model"
	"anime-catalog/internal/infrastructure/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var episodeColumns = []string{"id", "anime_id", "number", "vk_url", "created_at"}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, RepositoryInterface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewPostgresRepository(mock, time.Second)
}

func TestListByAnime(t *testing.T) {
	now := time.Now()

	t.Run("ordered by number", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		mock.ExpectQuery("ORDER BY number ASC, id ASC").WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(episodeColumns).
				AddRow(int64(10), int64(1), int64(1), "https://vk.com/1", now).
				AddRow(int64(11), int64(1), int64(2), "https://vk.com/2", now))

		episodes, err := repo.ListByAnime(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, episodes, 2)
		assert.Equal(t, int64(1), episodes[0].Number)
		assert.Equal(t, int64(2), episodes[1].Number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none is empty slice", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		mock.ExpectQuery("FROM episodes").WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows(episodeColumns))

		episodes, err := repo.ListByAnime(context.Background(), 2)
		require.NoError(t, err)
		assert.NotNil(t, episodes)
		assert.Empty(t, episodes)
	})
}

func TestGetByID_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery("WHERE id = \\$1").WithArgs(int64(5)).WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, model.ErrEpisodeNotFound)
}

func TestCreate(t *testing.T) {
	now := time.Now()

	t.Run("inserted", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		mock.ExpectQuery("INSERT INTO episodes").
			WithArgs(int64(1), int64(1), "https://vk.com/x").
			WillReturnRows(pgxmock.NewRows(episodeColumns).
				AddRow(int64(20), int64(1), int64(1), "https://vk.com/x", now))

		e, err := repo.Create(context.Background(), 1, 1, "https://vk.com/x")
		require.NoError(t, err)
		assert.Equal(t, int64(20), e.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing parent anime", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		mock.ExpectQuery("INSERT INTO episodes").
			WithArgs(int64(404), int64(1), "u").
			WillReturnError(&pgconn.PgError{Code: database.CodeForeignKeyViolation, ConstraintName: "episodes_anime_id_fkey"})

		_, err := repo.Create(context.Background(), 404, 1, "u")
		assert.ErrorIs(t, err, model.ErrAnimeReference)
		assert.Equal(t, 400, model.ToHTTPStatus(err))
	})

	t.Run("timeout", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		mock.ExpectQuery("INSERT INTO episodes").
			WithArgs(int64(1), int64(1), "u").
			WillReturnError(context.DeadlineExceeded)

		_, err := repo.Create(context.Background(), 1, 1, "u")
		assert.ErrorIs(t, err, database.ErrUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdate(t *testing.T) {
	now := time.Now()

	mock, repo := newMockRepo(t)
	mock.ExpectQuery("UPDATE episodes").WithArgs(int64(20), int64(3), "v").
		WillReturnRows(pgxmock.NewRows(episodeColumns).AddRow(int64(20), int64(1), int64(3), "v", now))
	mock.ExpectQuery("UPDATE episodes").WithArgs(int64(21), int64(3), "v").
		WillReturnError(pgx.ErrNoRows)

	e, err := repo.Update(context.Background(), 20, 3, "v")
	require.NoError(t, err)
	assert.Equal(t, int64(3), e.Number)

	_, err = repo.Update(context.Background(), 21, 3, "v")
	assert.ErrorIs(t, err, model.ErrEpisodeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Idempotent(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectExec("DELETE FROM episodes").WithArgs(int64(9)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM episodes").WithArgs(int64(9)).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
