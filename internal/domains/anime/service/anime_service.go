package service

import (
	"context"
	"fmt"

	"anime-catalog/internal/domains/anime/model"
	"anime-catalog/internal/domains/anime/repository"
	"anime-catalog/internal/shared/utils"
	"anime-catalog/pkg/logger"
)

type animeService struct {
	repo repository.RepositoryInterface
}

// NewAnimeService creates a new anime service instance
func NewAnimeService(repo repository.RepositoryInterface) ServiceInterface {
	return &animeService{
		repo: repo,
	}
}

func (s *animeService) List(ctx context.Context) ([]model.Anime, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Anime{}
	}
	return list, nil
}

func (s *animeService) GetByID(ctx context.Context, id int64) (*model.Anime, error) {
	if !utils.InSerialRange(id) {
		return nil, model.ErrAnimeNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *animeService) Search(ctx context.Context, query string) ([]model.Anime, error) {
	if query == "" {
		return []model.Anime{}, nil
	}

	list, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Anime{}
	}
	return list, nil
}

func (s *animeService) Create(ctx context.Context, req model.AnimeRequest) (*model.Anime, error) {
	in := req.ToInput()
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err.Error())
	}

	a, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	logger.Info("anime created", map[string]interface{}{
		"anime_id": a.ID,
		"title":    a.Title,
	})
	return a, nil
}

func (s *animeService) Update(ctx context.Context, id int64, req model.AnimeRequest) (*model.Anime, error) {
	if !utils.InSerialRange(id) {
		return nil, model.ErrAnimeNotFound
	}

	in := req.ToInput()
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err.Error())
	}

	return s.repo.Update(ctx, id, in)
}

func (s *animeService) Delete(ctx context.Context, id int64) error {
	if !utils.InSerialRange(id) {
		logger.Debug("delete anime: id out of range, nothing removed")
		return nil
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	// Xoá id không tồn tại vẫn coi là thành công
	if !deleted {
		logger.Debug("delete anime: id not found, nothing removed")
	}
	return nil
}
