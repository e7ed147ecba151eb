// Package app собирает сервер синхронизации: storage, hub уведомлений, метрики и HTTP роутер.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/notekeeper/internal/logging"
	"github.com/iudanet/notekeeper/internal/server/config"
	"github.com/iudanet/notekeeper/internal/server/handlers"
	"github.com/iudanet/notekeeper/internal/server/jwt"
	"github.com/iudanet/notekeeper/internal/server/metrics"
	"github.com/iudanet/notekeeper/internal/server/middleware"
	"github.com/iudanet/notekeeper/internal/server/notify"
	"github.com/iudanet/notekeeper/internal/server/storage/sqlite"
)

// Server сервер синхронизации заметок
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *sqlite.Storage
	hub        *notify.Hub
	metrics    *metrics.Metrics
	tokens     *jwt.Service
	limiter    *middleware.RateLimiter
	limit      func(http.Handler) http.Handler
	httpServer *http.Server
	version    string
}

// New открывает базу данных и собирает все компоненты сервера
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, version string) (*Server, error) {
	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		metrics: metrics.New(),
		tokens:  jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiration),
		version: version,
		hub: notify.NewHub(notify.Config{
			MaxConnPerUser: cfg.WebSocket.MaxConnPerUser,
			WriteWait:      cfg.WebSocket.WriteWait,
			PongWait:       cfg.WebSocket.PongWait,
			PingPeriod:     cfg.WebSocket.PingPeriod,
			SendBuffer:     cfg.WebSocket.SendBuffer,
		}, logger),
	}
	s.metrics.RegisterConnectionsGauge(s.hub.Connections)

	if cfg.RateLimit.Enabled {
		s.limit, s.limiter = middleware.RateLimitMiddleware(cfg.RateLimit.RequestsPerMinute, time.Minute, logger)
	}

	s.httpServer = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return s, nil
}

// Handler возвращает HTTP роутер сервера
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes() http.Handler {
	healthHandler := handlers.NewHealthHandler(s.logger, s.store, s.version)
	syncHandler := handlers.NewSyncHandler(s.logger, s.store, s.store, s.hub, s.metrics)
	wsHandler := handlers.NewWebSocketHandler(s.logger, s.hub)

	r := mux.NewRouter()
	r.Use(
		middleware.RecoveryMiddleware(s.logger),
		middleware.LoggingWithSkip(s.logger, []string{"/metrics", "/api/v1/health"}),
		middleware.MetricsMiddleware(s.metrics),
	)

	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(s.logger, s.tokens))

	var push http.Handler = http.HandlerFunc(syncHandler.Push)
	if s.limit != nil {
		push = s.limit(push)
	}

	protected.HandleFunc("/sync/pull", syncHandler.Pull).Methods(http.MethodGet)
	protected.Handle("/sync/push", push).Methods(http.MethodPost)
	protected.HandleFunc("/sync/conflicts", syncHandler.ListConflicts).Methods(http.MethodGet)
	protected.HandleFunc("/sync/conflicts/{id}/resolve", syncHandler.ResolveConflict).Methods(http.MethodPost)
	protected.HandleFunc("/ws", wsHandler.HandleConnection).Methods(http.MethodGet)

	return r
}

// Tokens сервис выпуска access токенов
func (s *Server) Tokens() *jwt.Service {
	return s.tokens
}

// Run слушает cfg.Server.Address до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln; при отмене ctx закрывает websocket
// соединения и выполняет graceful shutdown HTTP сервера
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Server started", "address", ln.Addr().String(), "version", s.version)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down server")

		// Hijacked websocket соединения Shutdown не отслеживает
		s.hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close освобождает ресурсы сервера
func (s *Server) Close() error {
	s.hub.Close()
	if s.limiter != nil {
		s.limiter.Stop()
		s.limiter = nil
	}
	return s.store.Close()
}

// LoggingConfig переводит настройки логирования сервера в logging.Config
func LoggingConfig(cfg config.LoggingConfig) logging.Config {
	return logging.Config{
		Level:      cfg.Level,
		Format:     cfg.Format,
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
	}
}
