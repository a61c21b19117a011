package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/spigell/career-assistant/internal/logger"
	"github.com/spigell/career-assistant/internal/responder"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Message string              `json:"message" jsonschema:"the question to ask about the candidate"`
	History []responder.Message `json:"history,omitempty" jsonschema:"previous turns of the conversation, ignored"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Reply   string  `json:"reply"`
	Rule    string  `json:"rule"`
	Section string  `json:"section,omitempty"`
	Score   float64 `json:"score,omitempty"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask about the candidate's bio, projects, skills, goals, LinkedIn profile or typical recruiter questions",
	}, s.handleAsk)
}

func (s *Server) handleAsk(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	reply := s.assistant.Resolve(input.Message)

	log := logger.WithFields(s.logger, zap.String(logger.FieldRequestID, uuid.NewString()))
	log.Debug("ask tool called", append(
		logger.ReplyFields(reply.Rule, string(reply.Section)),
		zap.Int("history", len(input.History)),
	)...)

	output := AskOutput{
		Reply:   reply.Text,
		Rule:    reply.Rule,
		Section: string(reply.Section),
		Score:   reply.Score,
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: reply.Text}},
	}, output, nil
}
