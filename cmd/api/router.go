package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"anime-catalog/internal/shared/middleware"
	"anime-catalog/internal/shared/response"
	"anime-catalog/pkg/container"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	// Match trên raw path để "Fate%2FZero" vẫn là một :query, param vẫn được unescape
	router.UseRawPath = true

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.HTTP.AllowedOrigins),
	)

	router.GET("/health", healthCheckHandler(c))
	router.POST("/maintenance", c.MaintenanceHandler.Run)

	api := router.Group("/api")
	{
		setupAnimeRoutes(api, c)
		setupEpisodeRoutes(api, c)
	}

	router.NoRoute(noRouteHandler(c.Config.HTTP.StaticDir))

	return router
}

// ========================================
// ANIME ROUTES
// ========================================
func setupAnimeRoutes(api *gin.RouterGroup, c *container.Container) {
	anime := api.Group("/anime")
	{
		anime.GET("", c.AnimeHandler.List)
		// "/search/" redirect về "/search" -> []
		anime.GET("/search", c.AnimeHandler.Search)
		anime.GET("/search/:query", c.AnimeHandler.Search)
		anime.GET("/:id", c.AnimeHandler.GetByID)
		anime.GET("/:id/episodes", c.EpisodeHandler.ListByAnime)
		anime.POST("", c.AnimeHandler.Create)
		anime.PUT("/:id", c.AnimeHandler.Update)
		anime.DELETE("/:id", c.AnimeHandler.Delete)
	}
}

// ========================================
// EPISODE ROUTES
// ========================================
func setupEpisodeRoutes(api *gin.RouterGroup, c *container.Container) {
	episodes := api.Group("/episodes")
	{
		episodes.GET("/:id", c.EpisodeHandler.GetByID)
		episodes.POST("", c.EpisodeHandler.Create)
		episodes.PUT("/:id", c.EpisodeHandler.Update)
		episodes.DELETE("/:id", c.EpisodeHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if appCtx.DB == nil {
			c.JSON(http.StatusInternalServerError, healthResponse{Status: "ERROR", Database: "disconnected"})
			return
		}

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			log.Warn().Err(err).Msg("health check failed")
			c.JSON(http.StatusInternalServerError, healthResponse{Status: "ERROR", Database: "disconnected"})
			return
		}

		c.JSON(http.StatusOK, healthResponse{Status: "OK", Database: "connected"})
	}
}

// ========================================
// NO ROUTE: /api/* -> 404 JSON, còn lại -> static file hoặc index.html (SPA)
// ========================================
func noRouteHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			response.NotFound(c, "Not found")
			return
		}

		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.NotFound(c, "Not found")
			return
		}

		if staticDir != "" {
			// Clean("/"+path) không cho phép thoát ra ngoài staticDir
			file := filepath.Join(staticDir, filepath.FromSlash(filepath.Clean("/"+path)))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}

			index := filepath.Join(staticDir, "index.html")
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}

		response.NotFound(c, "Not found")
	}
}
