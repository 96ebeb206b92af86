package match

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iamasit07/hotseat-connect4/internal/domain"
	"github.com/iamasit07/hotseat-connect4/pkg/uid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
)

// Notifier receives every event of a match, in order. Publish is called with
// the session lock held and must not block on a slow view.
type Notifier interface {
	Publish(matchID string, message domain.ServerMessage)
	CloseMatch(matchID string)
}

// Session is one hot-seat match hosted in memory.
type Session struct {
	MatchID      string
	Theme        domain.Theme
	Match        *domain.Match
	CreatedAt    time.Time
	LastActivity time.Time
	FinishedAt   time.Time
	mu           sync.Mutex
	disposed     bool
	manager      *Manager
}

// Snapshot is a copy of the session state safe to hand to a view.
type Snapshot struct {
	MatchID       string              `json:"matchId"`
	Theme         string              `json:"theme"`
	Board         [][]domain.PlayerID `json:"board"`
	CurrentPlayer domain.PlayerID     `json:"currentPlayer"`
	Status        domain.GameStatus   `json:"status"`
	Winner        domain.PlayerID     `json:"winner"`
	MoveCount     int                 `json:"moveCount"`
	Player1       domain.Player       `json:"player1"`
	Player2       domain.Player       `json:"player2"`
	Draws         int                 `json:"draws"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// Manager manages active match sessions
type Manager struct {
	sessions map[string]*Session // matchID → Session
	mu       sync.RWMutex
	rows     int
	columns  int
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewManager(rows, columns int, notifier Notifier, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		rows:     rows,
		columns:  columns,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateSession starts a match. Blank names take the theme defaults.
func (m *Manager) CreateSession(player1Name, player2Name, themeCode string) (*Session, error) {
	theme, err := domain.LookupTheme(themeCode)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", themeCode, err)
	}

	name1, name2 := theme.PlayerNames(player1Name, player2Name)
	match, err := domain.NewMatch(domain.NewPlayer(name1), domain.NewPlayer(name2), m.rows, m.columns)
	if err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}

	now := m.now()
	session := &Session{
		MatchID:      uid.GenerateMatchID(),
		Theme:        theme,
		Match:        match,
		CreatedAt:    now,
		LastActivity: now,
		manager:      m,
	}

	m.mu.Lock()
	m.sessions[session.MatchID] = session
	m.mu.Unlock()

	m.logger.Info("match created",
		zap.String("match_id", session.MatchID),
		zap.String("theme", theme.Code),
		zap.String("player1", name1),
		zap.String("player2", name2),
	)
	return session, nil
}

func (m *Manager) Get(matchID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[matchID]
	return session, exists
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Finish summarizes the final scores and disposes of the session.
func (m *Manager) Finish(matchID string) (domain.FinalScore, error) {
	m.mu.Lock()
	session, exists := m.sessions[matchID]
	if !exists {
		m.mu.Unlock()
		return domain.FinalScore{}, ErrSessionNotFound
	}
	delete(m.sessions, matchID)
	m.mu.Unlock()

	session.mu.Lock()
	session.disposed = true
	final := session.Match.Summary()
	session.publish(domain.ServerMessage{Type: domain.MessageMatchOver, Final: &final})
	session.mu.Unlock()

	m.notifier.CloseMatch(matchID)

	m.logger.Info("match finished",
		zap.String("match_id", matchID),
		zap.Int("player1_score", final.Player1.Score),
		zap.Int("player2_score", final.Player2.Score),
		zap.Bool("draw", final.Summary.IsDraw),
	)
	return final, nil
}

// CleanupOldSessions drops sessions whose round ended more than finishedTTL
// ago and sessions idle for more than idleTTL.
func (m *Manager) CleanupOldSessions(idleTTL, finishedTTL time.Duration) int {
	now := m.now()
	var removed []string

	m.mu.Lock()
	for matchID, session := range m.sessions {
		session.mu.Lock()
		var expired bool
		if session.Match.Game.IsFinished() {
			expired = now.Sub(session.FinishedAt) > finishedTTL
		} else {
			expired = now.Sub(session.LastActivity) > idleTTL
		}
		if expired {
			session.disposed = true
		}
		session.mu.Unlock()

		if expired {
			delete(m.sessions, matchID)
			removed = append(removed, matchID)
		}
	}
	m.mu.Unlock()

	for _, matchID := range removed {
		m.notifier.CloseMatch(matchID)
	}

	if len(removed) > 0 {
		m.logger.Info("memory cleanup: removed stale match sessions", zap.Int("count", len(removed)))
	}
	return len(removed)
}

// Drop plays column for whoever's turn it is. The returned snapshot is the
// state right after the move.
func (s *Session) Drop(column int) (domain.DropResult, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return domain.DropResult{}, Snapshot{}, ErrSessionClosed
	}

	result, err := s.Match.Drop(column)
	if err != nil {
		return result, Snapshot{}, err
	}

	now := s.manager.now()
	s.LastActivity = now

	if result.Outcome == domain.OutcomeColumnFull {
		s.publish(domain.ServerMessage{
			Type:        domain.MessageColumnFull,
			Result:      &result,
			CurrentTurn: s.Match.Game.CurrentPlayer,
		})
		return result, s.snapshotLocked(), nil
	}

	s.publish(domain.ServerMessage{
		Type:        domain.MessageMoveMade,
		Result:      &result,
		CurrentTurn: s.Match.Game.CurrentPlayer,
		Board:       s.Match.Game.Board.Cells(),
	})

	if s.Match.Game.IsFinished() {
		s.FinishedAt = now
		s.publish(domain.ServerMessage{
			Type:    domain.MessageRoundOver,
			Result:  &result,
			Player1: s.playerCopy(domain.Player1),
			Player2: s.playerCopy(domain.Player2),
		})

		s.manager.logger.Info("round over",
			zap.String("match_id", s.MatchID),
			zap.String("outcome", string(result.Outcome)),
			zap.Stringer("player", result.Player),
			zap.Int("moves", s.Match.Game.MoveCount),
		)
	}

	return result, s.snapshotLocked(), nil
}

// ResetBoard starts the next round and returns who opens it.
func (s *Session) ResetBoard() (domain.PlayerID, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return domain.Empty, Snapshot{}, ErrSessionClosed
	}

	starting := s.Match.ResetBoard()
	s.LastActivity = s.manager.now()
	s.FinishedAt = time.Time{}

	s.publish(domain.ServerMessage{
		Type:        domain.MessageRoundStarted,
		CurrentTurn: starting,
		Board:       s.Match.Game.Board.Cells(),
		Player1:     s.playerCopy(domain.Player1),
		Player2:     s.playerCopy(domain.Player2),
	})
	return starting, s.snapshotLocked(), nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Observe hands fn the current state while no event can be published, so a
// view registered inside fn misses nothing and sees nothing twice.
func (s *Session) Observe(fn func(Snapshot)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return ErrSessionClosed
	}
	fn(s.snapshotLocked())
	return nil
}

// caller must hold s.mu
func (s *Session) snapshotLocked() Snapshot {
	game := s.Match.Game
	return Snapshot{
		MatchID:       s.MatchID,
		Theme:         s.Theme.Code,
		Board:         game.Board.Cells(),
		CurrentPlayer: game.CurrentPlayer,
		Status:        game.Status,
		Winner:        game.Winner,
		MoveCount:     game.MoveCount,
		Player1:       *s.Match.Player1,
		Player2:       *s.Match.Player2,
		Draws:         s.Match.Draws,
		CreatedAt:     s.CreatedAt,
	}
}

// caller must hold s.mu
func (s *Session) publish(message domain.ServerMessage) {
	message.MatchID = s.MatchID
	s.manager.notifier.Publish(s.MatchID, message)
}

func (s *Session) playerCopy(id domain.PlayerID) *domain.Player {
	p := *s.Match.Player(id)
	return &p
}
