package cleanup

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SessionCleaner is satisfied by match.Manager
type SessionCleaner interface {
	CleanupOldSessions(idleTTL, finishedTTL time.Duration) int
}

type Worker struct {
	Sessions    SessionCleaner
	Interval    time.Duration
	IdleTTL     time.Duration
	FinishedTTL time.Duration
	logger      *zap.Logger
}

func NewWorker(sessions SessionCleaner, interval, idleTTL, finishedTTL time.Duration, logger *zap.Logger) *Worker {
	return &Worker{
		Sessions:    sessions,
		Interval:    interval,
		IdleTTL:     idleTTL,
		FinishedTTL: finishedTTL,
		logger:      logger,
	}
}

// Start runs a cleanup right away and then once per Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("cleanup worker started", zap.Duration("interval", w.Interval))
	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

func (w *Worker) runCleanup() {
	removed := w.Sessions.CleanupOldSessions(w.IdleTTL, w.FinishedTTL)
	w.logger.Debug("scheduled cleanup done", zap.Int("removed", removed))
}
