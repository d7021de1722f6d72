package model

import (
	"strings"

	"anime-catalog/internal/shared/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EpisodeRequest - POST /api/episodes, PUT /api/episodes/:id
// animeId / vkUrl là key camelCase của client cũ.
type EpisodeRequest struct {
	AnimeID       utils.FlexibleInt `json:"anime_id"`
	LegacyAnimeID utils.FlexibleInt `json:"animeId"`
	Number        utils.FlexibleInt `json:"number"`
	VKURL         *string           `json:"vk_url"`
	LegacyVKURL   *string           `json:"vkUrl"`
}

// CreateEpisodeInput sau khi merge key cũ/mới và trim
type CreateEpisodeInput struct {
	AnimeID *int64
	Number  *int64
	VKURL   string
}

// UpdateEpisodeInput: anime_id không đổi được sau khi tạo
type UpdateEpisodeInput struct {
	Number *int64
	VKURL  string
}

func (r EpisodeRequest) ToCreateInput() CreateEpisodeInput {
	animeID := r.AnimeID
	if !animeID.Set {
		animeID = r.LegacyAnimeID
	}
	return CreateEpisodeInput{
		AnimeID: animeID.Ptr(),
		Number:  r.Number.Ptr(),
		VKURL:   r.vkURL(),
	}
}

func (r EpisodeRequest) ToUpdateInput() UpdateEpisodeInput {
	return UpdateEpisodeInput{
		Number: r.Number.Ptr(),
		VKURL:  r.vkURL(),
	}
}

func (r EpisodeRequest) vkURL() string {
	if v := utils.FirstNonNil(r.VKURL, r.LegacyVKURL); v != nil {
		return strings.TrimSpace(*v)
	}
	return ""
}

func (in CreateEpisodeInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.AnimeID,
			validation.NotNil.Error("is required"),
			validation.Min(int64(1)).Error("must be a positive integer"),
			validation.Max(int64(utils.MaxSerialID)).Error("is out of range"),
		),
		validation.Field(&in.Number, numberRules()...),
		validation.Field(&in.VKURL, vkURLRules()...),
	)
}

func (in UpdateEpisodeInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Number, numberRules()...),
		validation.Field(&in.VKURL, vkURLRules()...),
	)
}

func numberRules() []validation.Rule {
	return []validation.Rule{
		validation.NotNil.Error("is required"),
		validation.Min(int64(0)).Error("must not be negative"),
		validation.Max(int64(utils.MaxSerialID)).Error("is out of range"),
	}
}

func vkURLRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("is required"),
		validation.RuneLength(1, MaxVKURLLength).Error("must be at most 255 characters"),
	}
}
