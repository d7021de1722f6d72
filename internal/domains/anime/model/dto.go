package model

import (
	"strings"

	"anime-catalog/internal/shared/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AnimeRequest - POST /api/anime, PUT /api/anime/:id
// "poster" là key cũ mà trang admin gửi lên, vẫn được chấp nhận.
type AnimeRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PosterURL   *string `json:"poster_url"`
	Poster      *string `json:"poster,omitempty"`
}

// AnimeInput là dữ liệu đã normalize, service chỉ làm việc với struct này
type AnimeInput struct {
	Title       string
	Description *string
	PosterURL   *string
}

// ToInput trims fields and turns blank optional fields into NULL.
func (r AnimeRequest) ToInput() AnimeInput {
	in := AnimeInput{
		Description: blankToNil(r.Description),
		PosterURL:   blankToNil(utils.FirstNonNil(r.PosterURL, r.Poster)),
	}
	if r.Title != nil {
		in.Title = strings.TrimSpace(*r.Title)
	}
	return in
}

func (in AnimeInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title,
			validation.Required.Error("is required"),
			validation.RuneLength(1, MaxTitleLength).Error("must be at most 255 characters"),
		),
		validation.Field(&in.PosterURL,
			validation.RuneLength(0, MaxPosterURLLength).Error("must be at most 255 characters"),
		),
	)
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
