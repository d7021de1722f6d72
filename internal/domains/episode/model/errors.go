package model

import (
	"errors"
	"net/http"
)

var (
	ErrValidation      = errors.New("invalid episode")
	ErrEpisodeNotFound = errors.New("episode not found")

	// ErrAnimeReference: anime_id trỏ tới anime không tồn tại (FK violation)
	ErrAnimeReference = errors.New("anime_id does not reference an existing anime")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEpisodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrAnimeReference):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
