// Package server exposes the analyzer and the cleaner over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"greg-hacke/stripclean/clean"
	"greg-hacke/stripclean/config"
	"greg-hacke/stripclean/meta"
)

// Server is the HTTP front end
type Server struct {
	echo      *echo.Echo
	cfg       config.ServerConfig
	analyzer  *meta.Analyzer
	cleanOpts clean.Options
	logger    *zap.Logger
}

// New builds the server and registers its routes and middleware
func New(cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	s := &Server{
		echo:      e,
		cfg:       cfg.Server,
		analyzer:  meta.NewAnalyzer(cfg.Policy(), meta.WithLogger(logger.Named("analyzer"))),
		cleanOpts: clean.Options{JPEGQuality: cfg.Clean.JPEGQuality},
		logger:    logger,
	}

	e.HTTPErrorHandler = s.errorHandler
	s.setupMiddleware()
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/", s.index)
	s.echo.GET("/healthz", s.health)
	s.echo.POST("/analyze", s.analyze)
	s.echo.POST("/clean", s.clean)
}

// Handler returns the server as an http.Handler
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", s.cfg.Addr()))
		if err := s.echo.Start(s.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
