package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
	"go.uber.org/zap"
)

const (
	writeWait = 10 * time.Second

	// events queued for one view before it counts as stalled
	sendBuffer = 64
)

// viewer is one open view of a match. Only writePump writes to conn.
type viewer struct {
	conn *websocket.Conn
	send chan interface{}
}

func newViewer(conn *websocket.Conn) *viewer {
	return &viewer{conn: conn, send: make(chan interface{}, sendBuffer)}
}

// writePump drains the queue onto the socket and pings between events. A
// closed queue ends the stream with a normal close frame.
func (v *viewer) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		v.conn.Close()
	}()

	for {
		select {
		case message, ok := <-v.send:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				v.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match closed"))
				return
			}
			if err := v.conn.WriteJSON(message); err != nil {
				return
			}
		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ConnectionManager fans match events out to the views bound to each match.
// It implements match.Notifier; Publish only queues, so a slow view never
// holds up the match.
type ConnectionManager struct {
	views  map[string]map[*viewer]struct{} // matchID → open views
	mu     sync.RWMutex                    // Protects the map and the send channels
	logger *zap.Logger
}

func NewConnectionManager(logger *zap.Logger) *ConnectionManager {
	return &ConnectionManager{
		views:  make(map[string]map[*viewer]struct{}),
		logger: logger,
	}
}

func (cm *ConnectionManager) AddConnection(matchID string, v *viewer) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.views[matchID] == nil {
		cm.views[matchID] = make(map[*viewer]struct{})
	}
	cm.views[matchID][v] = struct{}{}
}

// RemoveConnection closes the queue of v and forgets it. Safe to call twice.
func (cm *ConnectionManager) RemoveConnection(matchID string, v *viewer) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	set, exists := cm.views[matchID]
	if !exists {
		return
	}
	if _, ok := set[v]; !ok {
		return
	}

	close(v.send)
	delete(set, v)
	if len(set) == 0 {
		delete(cm.views, matchID)
	}
}

func (cm *ConnectionManager) Count(matchID string) int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.views[matchID])
}

// Publish queues message for every view of matchID. A view whose queue is
// full is dropped.
func (cm *ConnectionManager) Publish(matchID string, message domain.ServerMessage) {
	var stalled []*viewer

	cm.mu.RLock()
	for v := range cm.views[matchID] {
		if !enqueue(v, message) {
			stalled = append(stalled, v)
		}
	}
	cm.mu.RUnlock()

	for _, v := range stalled {
		cm.logger.Warn("dropping stalled view",
			zap.String("match_id", matchID),
			zap.String("type", message.Type),
		)
		cm.RemoveConnection(matchID, v)
	}
}

// CloseMatch ends every view of a disposed match once its queued events are
// written.
func (cm *ConnectionManager) CloseMatch(matchID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for v := range cm.views[matchID] {
		close(v.send)
	}
	delete(cm.views, matchID)
}

// caller must hold cm.mu so the channel cannot be closed underneath
func enqueue(v *viewer, message interface{}) bool {
	select {
	case v.send <- message:
		return true
	default:
		return false
	}
}
