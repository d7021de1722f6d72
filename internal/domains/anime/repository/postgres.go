package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anime-catalog/internal/domains/anime/model"
	"anime-catalog/internal/infrastructure/database"
	"anime-catalog/internal/shared/utils"

	"github.com/jackc/pgx/v5"
)

// postgresRepository implements RepositoryInterface on top of a pgx pool
type postgresRepository struct {
	db           database.Querier
	queryTimeout time.Duration
}

// NewPostgresRepository creates a new anime repository instance
func NewPostgresRepository(db database.Querier, queryTimeout time.Duration) RepositoryInterface {
	return &postgresRepository{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

const (
	listQuery = `
		SELECT a.id, a.title, a.description, a.poster_url, a.created_at, a.updated_at,
		       COUNT(e.id) AS episodes_count
		FROM anime a
		LEFT JOIN episodes e ON e.anime_id = a.id
		GROUP BY a.id
		ORDER BY a.created_at DESC, a.id DESC
	`

	getByIDQuery = `
		SELECT a.id, a.title, a.description, a.poster_url, a.created_at, a.updated_at,
		       COUNT(e.id) AS episodes_count
		FROM anime a
		LEFT JOIN episodes e ON e.anime_id = a.id
		WHERE a.id = $1
		GROUP BY a.id
	`

	searchQuery = `
		SELECT a.id, a.title, a.description, a.poster_url, a.created_at, a.updated_at,
		       COUNT(e.id) AS episodes_count
		FROM anime a
		LEFT JOIN episodes e ON e.anime_id = a.id
		WHERE a.title ILIKE $1 OR a.description ILIKE $1
		GROUP BY a.id
		ORDER BY a.title ASC, a.id ASC
	`

	createQuery = `
		INSERT INTO anime (title, description, poster_url)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, poster_url, created_at, updated_at, 0::bigint AS episodes_count
	`

	updateQuery = `
		UPDATE anime
		SET title = $2, description = $3, poster_url = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, poster_url, created_at, updated_at,
		          (SELECT COUNT(*) FROM episodes e WHERE e.anime_id = anime.id) AS episodes_count
	`

	deleteQuery = `DELETE FROM anime WHERE id = $1`
)

func (r *postgresRepository) List(ctx context.Context) ([]model.Anime, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	return r.queryList(ctx, listQuery)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Anime, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	a, err := scanAnime(r.db.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAnimeNotFound
		}
		return nil, fmt.Errorf("failed to get anime by id: %w", database.Classify(err))
	}
	return a, nil
}

func (r *postgresRepository) Search(ctx context.Context, query string) ([]model.Anime, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	return r.queryList(ctx, searchQuery, utils.ContainsPattern(query))
}

func (r *postgresRepository) Create(ctx context.Context, in model.AnimeInput) (*model.Anime, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	a, err := scanAnime(r.db.QueryRow(ctx, createQuery, in.Title, in.Description, in.PosterURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create anime: %w", database.Classify(err))
	}
	return a, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, in model.AnimeInput) (*model.Anime, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	a, err := scanAnime(r.db.QueryRow(ctx, updateQuery, id, in.Title, in.Description, in.PosterURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAnimeNotFound
		}
		return nil, fmt.Errorf("failed to update anime: %w", database.Classify(err))
	}
	return a, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, deleteQuery, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete anime: %w", database.Classify(err))
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) queryList(ctx context.Context, query string, args ...any) ([]model.Anime, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query anime: %w", database.Classify(err))
	}
	defer rows.Close()

	list := make([]model.Anime, 0)
	for rows.Next() {
		a, err := scanAnime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan anime: %w", err)
		}
		list = append(list, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate anime: %w", database.Classify(err))
	}

	return list, nil
}

func scanAnime(row pgx.Row) (*model.Anime, error) {
	var a model.Anime
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.PosterURL,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EpisodesCount,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
