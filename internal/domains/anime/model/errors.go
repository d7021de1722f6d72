package model

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation wraps ozzo validation errors (missing/empty title ...)
	ErrValidation = errors.New("invalid anime")

	ErrAnimeNotFound = errors.New("anime not found")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAnimeNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
