package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"anime-catalog/internal/domains/episode/model"
	"anime-catalog/internal/domains/episode/service"
	"anime-catalog/internal/shared/middleware"
	"anime-catalog/internal/shared/response"
	"anime-catalog/internal/shared/utils"
)

type EpisodeHandler struct {
	service service.ServiceInterface
}

func NewEpisodeHandler(svc service.ServiceInterface) *EpisodeHandler {
	return &EpisodeHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: ListByAnime - GET /api/anime/:id/episodes
// ════════════════════════════════════════════════════════════════

func (h *EpisodeHandler) ListByAnime(c *gin.Context) {
	animeID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid anime id")
		return
	}

	episodes, err := h.service.ListByAnime(c.Request.Context(), animeID)
	if err != nil {
		h.handleError(c, "list episodes", err)
		return
	}

	response.List(c, episodes)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /api/episodes/:id
// ════════════════════════════════════════════════════════════════

func (h *EpisodeHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid episode id")
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, "get episode", err)
		return
	}

	response.Success(c, http.StatusOK, e)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/episodes
// ════════════════════════════════════════════════════════════════

func (h *EpisodeHandler) Create(c *gin.Context) {
	var req model.EpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, "create episode", err)
		return
	}

	response.Created(c, e)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/episodes/:id
// ════════════════════════════════════════════════════════════════

func (h *EpisodeHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid episode id")
		return
	}

	var req model.EpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, "update episode", err)
		return
	}

	response.Success(c, http.StatusOK, e)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/episodes/:id
// ════════════════════════════════════════════════════════════════

func (h *EpisodeHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid episode id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, "delete episode", err)
		return
	}

	response.NoContent(c)
}

func (h *EpisodeHandler) handleError(c *gin.Context, op string, err error) {
	switch status := model.ToHTTPStatus(err); status {
	case http.StatusNotFound:
		response.NotFound(c, "Episode not found")
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		log.Error().Err(err).
			Str("op", op).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Msg("episode request failed")
		response.InternalServerError(c)
	}
}
