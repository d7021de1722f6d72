package service

import (
	"context"
	"fmt"

	"anime-catalog/internal/domains/episode/model"
	"anime-catalog/internal/domains/episode/repository"
	"anime-catalog/internal/shared/utils"
	"anime-catalog/pkg/logger"
)

type episodeService struct {
	repo repository.RepositoryInterface
}

// NewEpisodeService creates a new episode service instance
func NewEpisodeService(repo repository.RepositoryInterface) ServiceInterface {
	return &episodeService{
		repo: repo,
	}
}

func (s *episodeService) ListByAnime(ctx context.Context, animeID int64) ([]model.Episode, error) {
	// anime không thể tồn tại với id ngoài int4
	if !utils.InSerialRange(animeID) {
		return []model.Episode{}, nil
	}

	episodes, err := s.repo.ListByAnime(ctx, animeID)
	if err != nil {
		return nil, err
	}
	if episodes == nil {
		episodes = []model.Episode{}
	}
	return episodes, nil
}

func (s *episodeService) GetByID(ctx context.Context, id int64) (*model.Episode, error) {
	if !utils.InSerialRange(id) {
		return nil, model.ErrEpisodeNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *episodeService) Create(ctx context.Context, req model.EpisodeRequest) (*model.Episode, error) {
	in := req.ToCreateInput()
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err.Error())
	}

	// Không check trùng number trong cùng anime, giữ nguyên hành vi cũ
	e, err := s.repo.Create(ctx, *in.AnimeID, *in.Number, in.VKURL)
	if err != nil {
		return nil, err
	}

	logger.Info("episode created", map[string]interface{}{
		"episode_id": e.ID,
		"anime_id":   e.AnimeID,
		"number":     e.Number,
	})
	return e, nil
}

func (s *episodeService) Update(ctx context.Context, id int64, req model.EpisodeRequest) (*model.Episode, error) {
	if !utils.InSerialRange(id) {
		return nil, model.ErrEpisodeNotFound
	}

	in := req.ToUpdateInput()
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err.Error())
	}

	return s.repo.Update(ctx, id, *in.Number, in.VKURL)
}

func (s *episodeService) Delete(ctx context.Context, id int64) error {
	if !utils.InSerialRange(id) {
		logger.Debug("delete episode: id out of range, nothing removed")
		return nil
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		logger.Debug("delete episode: id not found, nothing removed")
	}
	return nil
}
