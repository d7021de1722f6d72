package service

import (
	"context"

	"anime-catalog/internal/domains/anime/model"
)

// ServiceInterface defines business logic operations for the anime catalog.
// Errors: model.ErrValidation, model.ErrAnimeNotFound, or a wrapped
// persistence error (database.ErrUnavailable on timeout).
type ServiceInterface interface {
	// List returns all anime, newest first. Empty catalog => empty slice
	List(ctx context.Context) ([]model.Anime, error)

	GetByID(ctx context.Context, id int64) (*model.Anime, error)

	// Search matches title or description, case-insensitive, ordered by title
	Search(ctx context.Context, query string) ([]model.Anime, error)

	// Create validates the request (title required) and inserts a new row
	Create(ctx context.Context, req model.AnimeRequest) (*model.Anime, error)

	// Update overwrites title, description and poster_url
	Update(ctx context.Context, id int64, req model.AnimeRequest) (*model.Anime, error)

	// Delete is idempotent: a missing id is not an error
	Delete(ctx context.Context, id int64) error
}
