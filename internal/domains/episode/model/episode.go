package model

import "time"

// Episode thuộc về đúng một Anime; bị xoá theo khi anime bị xoá (ON DELETE CASCADE)
type Episode struct {
	ID        int64     `json:"id" db:"id"`
	AnimeID   int64     `json:"anime_id" db:"anime_id"`
	Number    int64     `json:"number" db:"number"`
	VKURL     string    `json:"vk_url" db:"vk_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const MaxVKURLLength = 255
