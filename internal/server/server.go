// Package server serves the assistant over a small JSON HTTP API.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spigell/career-assistant/internal/logger"
	"github.com/spigell/career-assistant/internal/responder"
)

const (
	DefaultAddr     = ":8080"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	listenAddr string
	app        *fiber.App
	logger     *zap.Logger
}

func NewServer(addr string, assistant *responder.Assistant, log *zap.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	log = logger.WithFields(log, zap.String(logger.FieldTransport, "http"))

	var (
		app = fiber.New(fiber.Config{
			ErrorHandler:          ErrorHandler(log),
			DisableStartupMessage: true,
		})
		checkHandler = NewCheckHandler()
		chatHandler  = NewChatHandler(assistant, log)
		infoHandler  = NewInfoHandler(assistant)
		check        = app.Group("/check")
		apiv1        = app.Group("/api/v1")
	)

	check.Get("/healthy", checkHandler.HandleHealthy)
	apiv1.Post("/chat", chatHandler.HandleChat)
	apiv1.Get("/rules", infoHandler.HandleRules)
	apiv1.Get("/sections/:name", infoHandler.HandleSection)

	return &Server{
		listenAddr: addr,
		app:        app,
		logger:     log,
	}
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.listenAddr)
	}()

	s.logger.Info("server started", zap.String("addr", s.listenAddr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info("server stopped")
	return <-errCh
}
