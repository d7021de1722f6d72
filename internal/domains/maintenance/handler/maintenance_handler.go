package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"anime-catalog/internal/domains/maintenance/service"
	"anime-catalog/internal/shared/middleware"
	"anime-catalog/internal/shared/response"
)

type MaintenanceHandler struct {
	service service.ServiceInterface
}

func NewMaintenanceHandler(svc service.ServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: svc,
	}
}

// StatusResponse - body của POST /maintenance khi thành công
type StatusResponse struct {
	Status string `json:"status"`
}

// ════════════════════════════════════════════════════════════════
// POST /maintenance - VACUUM ANALYZE toàn bộ bảng, chạy đồng bộ
// ════════════════════════════════════════════════════════════════

func (h *MaintenanceHandler) Run(c *gin.Context) {
	if err := h.service.Run(c.Request.Context()); err != nil {
		log.Error().Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Msg("manual maintenance failed")
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, StatusResponse{Status: "OK"})
}
