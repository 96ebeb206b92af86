package websocket

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
	"github.com/iamasit07/hotseat-connect4/internal/service/match"
	"github.com/iamasit07/hotseat-connect4/internal/transport/http/middleware"
	"go.uber.org/zap"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler serves the read-only event stream of a match. Moves are played
// over HTTP; the socket only pushes what happened.
type Handler struct {
	ConnManager *ConnectionManager
	Manager     *match.Manager
	Upgrader    websocket.Upgrader
	logger      *zap.Logger
}

func NewHandler(cm *ConnectionManager, manager *match.Manager, allowedOrigins []string, logger *zap.Logger) *Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return &Handler{
		ConnManager: cm,
		Manager:     manager,
		logger:      logger,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades the connection. The match token has already been
// checked by middleware.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	matchID := c.GetString(middleware.ContextMatchID)
	session, exists := h.Manager.Get(matchID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}

	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("upgrade error", zap.String("match_id", matchID), zap.Error(err))
		return
	}

	// The opening state is queued and the view registered under the session
	// lock, so match_started always comes first.
	v := newViewer(conn)
	err = session.Observe(func(snap match.Snapshot) {
		p1, p2 := snap.Player1, snap.Player2
		v.send <- domain.ServerMessage{
			Type:        domain.MessageMatchStarted,
			MatchID:     matchID,
			CurrentTurn: snap.CurrentPlayer,
			Board:       snap.Board,
			Player1:     &p1,
			Player2:     &p2,
		}
		h.ConnManager.AddConnection(matchID, v)
	})
	if err != nil {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match closed"),
			time.Now().Add(writeWait))
		conn.Close()
		return
	}
	h.logger.Info("view connected", zap.String("match_id", matchID))

	go v.writePump()
	h.readPump(matchID, v)
}

// readPump keeps the socket alive and returns once the client goes away
func (h *Handler) readPump(matchID string, v *viewer) {
	conn := v.conn
	defer func() {
		h.ConnManager.RemoveConnection(matchID, v)
		h.logger.Info("view disconnected", zap.String("match_id", matchID))
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Incoming frames carry no commands; reading drives pong and close handling.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("view closed unexpectedly", zap.String("match_id", matchID), zap.Error(err))
			}
			return
		}
	}
}
