package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"anime-catalog/internal/domains/anime/model"
	"anime-catalog/internal/domains/anime/service"
	"anime-catalog/internal/shared/middleware"
	"anime-catalog/internal/shared/response"
	"anime-catalog/internal/shared/utils"
)

type AnimeHandler struct {
	service service.ServiceInterface
}

func NewAnimeHandler(svc service.ServiceInterface) *AnimeHandler {
	return &AnimeHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /api/anime
// ════════════════════════════════════════════════════════════════

func (h *AnimeHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, "list anime", err)
		return
	}

	response.List(c, list)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /api/anime/:id
// ════════════════════════════════════════════════════════════════

func (h *AnimeHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid anime id")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, "get anime", err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// READ: Search - GET /api/anime/search/:query
// ════════════════════════════════════════════════════════════════

func (h *AnimeHandler) Search(c *gin.Context) {
	list, err := h.service.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		h.handleError(c, "search anime", err)
		return
	}

	response.List(c, list)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/anime
// ════════════════════════════════════════════════════════════════

func (h *AnimeHandler) Create(c *gin.Context) {
	var req model.AnimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, "create anime", err)
		return
	}

	response.Created(c, a)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/anime/:id
// ════════════════════════════════════════════════════════════════

func (h *AnimeHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid anime id")
		return
	}

	var req model.AnimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, "update anime", err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/anime/:id
// ════════════════════════════════════════════════════════════════

func (h *AnimeHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid anime id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, "delete anime", err)
		return
	}

	response.NoContent(c)
}

// handleError: 4xx trả message cho client, 5xx chỉ log chi tiết phía server
func (h *AnimeHandler) handleError(c *gin.Context, op string, err error) {
	switch status := model.ToHTTPStatus(err); status {
	case http.StatusNotFound:
		response.NotFound(c, "Anime not found")
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		log.Error().Err(err).
			Str("op", op).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Msg("anime request failed")
		response.InternalServerError(c)
	}
}
