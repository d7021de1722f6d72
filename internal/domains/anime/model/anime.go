package model

import "time"

// Anime là một title trong catalog. EpisodesCount không lưu trong bảng,
// được tính bằng COUNT(episodes) khi đọc.
type Anime struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   *string   `json:"description" db:"description"`
	PosterURL     *string   `json:"poster_url" db:"poster_url"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
	EpisodesCount int64     `json:"episodes_count" db:"episodes_count"`
}

// Constants for validation
const (
	MaxTitleLength     = 255
	MaxPosterURLLength = 255
)
