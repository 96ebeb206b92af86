package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
	"github.com/iamasit07/hotseat-connect4/internal/service/match"
	"github.com/iamasit07/hotseat-connect4/internal/transport/http/middleware"
	"github.com/iamasit07/hotseat-connect4/pkg/auth"
	"go.uber.org/zap"
)

// MatchHandler is the presentation adapter: it turns requests into calls on
// a session and reports what the engine returned.
type MatchHandler struct {
	Manager *match.Manager
	Tokens  *auth.TokenIssuer
	logger  *zap.Logger
}

func NewMatchHandler(manager *match.Manager, tokens *auth.TokenIssuer, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{Manager: manager, Tokens: tokens, logger: logger}
}

type createMatchRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Theme   string `json:"theme"`
}

type createMatchResponse struct {
	Token string         `json:"token"`
	Match match.Snapshot `json:"match"`
}

type dropRequest struct {
	Column *int `json:"column" binding:"required"`
}

type dropResponse struct {
	Result domain.DropResult `json:"result"`
	Match  match.Snapshot    `json:"match"`
}

type resetResponse struct {
	StartingPlayer domain.PlayerID `json:"startingPlayer"`
	Match          match.Snapshot  `json:"match"`
}

// ListThemes returns the theme catalog for the settings screen
func (h *MatchHandler) ListThemes(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Themes())
}

// CreateMatch starts a match and hands back the token that controls it
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req createMatchRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
	}

	session, err := h.Manager.CreateSession(req.Player1, req.Player2, req.Theme)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTheme) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown theme"})
			return
		}
		h.logger.Error("create match failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
		return
	}

	token, err := h.Tokens.GenerateMatchToken(session.MatchID)
	if err != nil {
		h.logger.Error("sign match token failed", zap.String("match_id", session.MatchID), zap.Error(err))
		_, _ = h.Manager.Finish(session.MatchID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
		return
	}

	c.JSON(http.StatusCreated, createMatchResponse{Token: token, Match: session.Snapshot()})
}

func (h *MatchHandler) GetMatch(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

func (h *MatchHandler) Drop(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req dropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	result, snap, err := session.Drop(*req.Column)
	switch {
	case errors.Is(err, match.ErrSessionClosed):
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	case errors.Is(err, domain.ErrColumnOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, domain.ErrRoundOver):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Error("drop failed", zap.String("match_id", session.MatchID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to play move"})
		return
	}

	c.JSON(http.StatusOK, dropResponse{Result: result, Match: snap})
}

func (h *MatchHandler) Reset(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	starting, snap, err := session.ResetBoard()
	if errors.Is(err, match.ErrSessionClosed) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}
	if err != nil {
		h.logger.Error("reset failed", zap.String("match_id", session.MatchID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start round"})
		return
	}
	c.JSON(http.StatusOK, resetResponse{StartingPlayer: starting, Match: snap})
}

// Finish reports the final scores and disposes of the match
func (h *MatchHandler) Finish(c *gin.Context) {
	final, err := h.Manager.Finish(c.GetString(middleware.ContextMatchID))
	if errors.Is(err, match.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finish match"})
		return
	}
	c.JSON(http.StatusOK, final)
}

func (h *MatchHandler) session(c *gin.Context) (*match.Session, bool) {
	session, exists := h.Manager.Get(c.GetString(middleware.ContextMatchID))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return nil, false
	}
	return session, true
}
