package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anime-catalog/internal/domains/episode/model"
	"anime-catalog/internal/infrastructure/database"

	"github.com/jackc/pgx/v5"
)

type postgresRepository struct {
	db           database.Querier
	queryTimeout time.Duration
}

// NewPostgresRepository creates a new episode repository instance
func NewPostgresRepository(db database.Querier, queryTimeout time.Duration) RepositoryInterface {
	return &postgresRepository{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

const (
	listByAnimeQuery = `
		SELECT id, anime_id, number, vk_url, created_at
		FROM episodes
		WHERE anime_id = $1
		ORDER BY number ASC, id ASC
	`

	getByIDQuery = `
		SELECT id, anime_id, number, vk_url, created_at
		FROM episodes
		WHERE id = $1
	`

	createQuery = `
		INSERT INTO episodes (anime_id, number, vk_url)
		VALUES ($1, $2, $3)
		RETURNING id, anime_id, number, vk_url, created_at
	`

	updateQuery = `
		UPDATE episodes
		SET number = $2, vk_url = $3
		WHERE id = $1
		RETURNING id, anime_id, number, vk_url, created_at
	`

	deleteQuery = `DELETE FROM episodes WHERE id = $1`
)

func (r *postgresRepository) ListByAnime(ctx context.Context, animeID int64) ([]model.Episode, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, listByAnimeQuery, animeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", database.Classify(err))
	}
	defer rows.Close()

	episodes := make([]model.Episode, 0)
	for rows.Next() {
		e, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode: %w", err)
		}
		episodes = append(episodes, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate episodes: %w", database.Classify(err))
	}

	return episodes, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Episode, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	e, err := scanEpisode(r.db.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("failed to get episode by id: %w", database.Classify(err))
	}
	return e, nil
}

func (r *postgresRepository) Create(ctx context.Context, animeID, number int64, vkURL string) (*model.Episode, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	e, err := scanEpisode(r.db.QueryRow(ctx, createQuery, animeID, number, vkURL))
	if err != nil {
		// 23503: anime_id không tồn tại, không có row nào được insert
		if database.PgErrorCode(err) == database.CodeForeignKeyViolation {
			return nil, fmt.Errorf("%w: anime_id=%d", model.ErrAnimeReference, animeID)
		}
		return nil, fmt.Errorf("failed to create episode: %w", database.Classify(err))
	}
	return e, nil
}

func (r *postgresRepository) Update(ctx context.Context, id, number int64, vkURL string) (*model.Episode, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	e, err := scanEpisode(r.db.QueryRow(ctx, updateQuery, id, number, vkURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("failed to update episode: %w", database.Classify(err))
	}
	return e, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, deleteQuery, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete episode: %w", database.Classify(err))
	}
	return tag.RowsAffected() > 0, nil
}

func scanEpisode(row pgx.Row) (*model.Episode, error) {
	var e model.Episode
	if err := row.Scan(&e.ID, &e.AnimeID, &e.Number, &e.VKURL, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
