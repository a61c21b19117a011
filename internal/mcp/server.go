// Package mcp exposes the assistant to MCP clients: an ask tool that routes a
// message through the rule chain and read-only resources for every section.
package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/spigell/career-assistant/internal/documents"
	"github.com/spigell/career-assistant/internal/logger"
	"github.com/spigell/career-assistant/internal/responder"
)

// ErrMissingAssistant is returned when no assistant is provided.
var ErrMissingAssistant = errors.New("mcp: assistant is required")

// Assistant is the part of responder.Assistant the server needs.
type Assistant interface {
	Resolve(message string) responder.Reply
	Store() *documents.Store
}

// Server is the MCP server for the career assistant.
type Server struct {
	assistant Assistant
	server    *mcp.Server
	logger    *zap.Logger
}

// NewServer creates a server reporting version to clients.
func NewServer(assistant Assistant, version string, log *zap.Logger) (*Server, error) {
	if assistant == nil {
		return nil, ErrMissingAssistant
	}

	impl := &mcp.Implementation{
		Name:    "career-assistant",
		Version: version,
	}

	s := &Server{
		assistant: assistant,
		server:    mcp.NewServer(impl, nil),
		logger:    logger.WithFields(log, zap.String(logger.FieldTransport, "mcp")),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server started")
	defer s.logger.Info("mcp server stopped")

	return s.server.Run(ctx, &mcp.StdioTransport{})
}
