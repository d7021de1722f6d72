package repository

import (
	"context"

	"anime-catalog/internal/domains/anime/model"
)

// RepositoryInterface defines data access for the anime table.
// Every method is a single SQL statement.
type RepositoryInterface interface {
	// List returns every anime with episodes_count, newest first
	List(ctx context.Context) ([]model.Anime, error)

	// GetByID returns model.ErrAnimeNotFound if not exists
	GetByID(ctx context.Context, id int64) (*model.Anime, error)

	// Search: case-insensitive substring match on title OR description, ordered by title
	Search(ctx context.Context, query string) ([]model.Anime, error)

	Create(ctx context.Context, in model.AnimeInput) (*model.Anime, error)

	// Update overwrites title/description/poster_url and refreshes updated_at.
	// Returns model.ErrAnimeNotFound if not exists
	Update(ctx context.Context, id int64, in model.AnimeInput) (*model.Anime, error)

	// Delete reports whether a row was removed. Episodes go with it (ON DELETE CASCADE).
	Delete(ctx context.Context, id int64) (bool, error)
}
