package repository

import (
	"context"

	"anime-catalog/internal/domains/episode/model"
)

type RepositoryInterface interface {
	// ListByAnime returns episodes ordered by number, then id
	ListByAnime(ctx context.Context, animeID int64) ([]model.Episode, error)

	GetByID(ctx context.Context, id int64) (*model.Episode, error)

	// Create returns model.ErrAnimeReference when anime_id has no parent row
	Create(ctx context.Context, animeID, number int64, vkURL string) (*model.Episode, error)

	Update(ctx context.Context, id, number int64, vkURL string) (*model.Episode, error)

	Delete(ctx context.Context, id int64) (bool, error)
}
