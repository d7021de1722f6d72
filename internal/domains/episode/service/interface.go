package service

import (
	"context"

	"anime-catalog/internal/domains/episode/model"
)

type ServiceInterface interface {
	// ListByAnime: empty slice when the anime has no episodes (or does not exist)
	ListByAnime(ctx context.Context, animeID int64) ([]model.Episode, error)

	GetByID(ctx context.Context, id int64) (*model.Episode, error)

	// Create requires anime_id, number, vk_url.
	// Errors: model.ErrValidation, model.ErrAnimeReference
	Create(ctx context.Context, req model.EpisodeRequest) (*model.Episode, error)

	// Update overwrites number and vk_url. anime_id in the body is ignored
	Update(ctx context.Context, id int64, req model.EpisodeRequest) (*model.Episode, error)

	Delete(ctx context.Context, id int64) error
}
