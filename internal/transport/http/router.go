package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/hotseat-connect4/internal/transport/http/middleware"
	"github.com/iamasit07/hotseat-connect4/pkg/auth"
	"go.uber.org/zap"
)

// NewRouter wires the match routes. stream serves the view WebSocket and
// sits behind the same match token check as the mutating routes.
func NewRouter(h *MatchHandler, stream gin.HandlerFunc, tokens *auth.TokenIssuer, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(allowedOrigins, logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public Routes
	router.GET("/api/themes", h.ListThemes)
	router.POST("/api/matches", h.CreateMatch)

	// Match Routes (token bound to :id)
	matchAuth := middleware.MatchTokenMiddleware(tokens)
	protected := router.Group("/api/matches/:id")
	protected.Use(matchAuth)
	{
		protected.GET("", h.GetMatch)
		protected.POST("/drop", h.Drop)
		protected.POST("/reset", h.Reset)
		protected.POST("/finish", h.Finish)
	}

	if stream != nil {
		router.GET("/ws/matches/:id", matchAuth, stream)
	}

	return router
}
