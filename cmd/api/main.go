package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/hotseat-connect4/internal/config"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
	"github.com/iamasit07/hotseat-connect4/internal/service/cleanup"
	"github.com/iamasit07/hotseat-connect4/internal/service/match"
	transportHttp "github.com/iamasit07/hotseat-connect4/internal/transport/http"
	"github.com/iamasit07/hotseat-connect4/internal/transport/websocket"
	"github.com/iamasit07/hotseat-connect4/pkg/auth"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if _, err := domain.NewBoard(cfg.BoardRows, cfg.BoardColumns); err != nil {
		logger.Fatal("invalid board size", zap.Int("rows", cfg.BoardRows), zap.Int("columns", cfg.BoardColumns), zap.Error(err))
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Initialize Services (Business Logic Layer)
	connManager := websocket.NewConnectionManager(logger)
	matchManager := match.NewManager(cfg.BoardRows, cfg.BoardColumns, connManager, logger)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.MatchTokenTTL)

	// 2. Initialize Background Workers
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanupWorker := cleanup.NewWorker(matchManager, cfg.CleanupInterval, cfg.SessionIdleTTL, cfg.SessionFinishedTTL, logger)
	go cleanupWorker.Start(ctx)

	// 3. Initialize HTTP Handlers (API Layer)
	matchHandler := transportHttp.NewMatchHandler(matchManager, tokens, logger)
	wsHandler := websocket.NewHandler(connManager, matchManager, cfg.AllowedOrigins, logger)
	router := transportHttp.NewRouter(matchHandler, wsHandler.HandleWebSocket, tokens, cfg.AllowedOrigins, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.Int("rows", cfg.BoardRows),
			zap.Int("columns", cfg.BoardColumns),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}
