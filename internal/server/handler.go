package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/career-assistant/internal/logger"
	"github.com/spigell/career-assistant/internal/responder"
)

type ChatHandler struct {
	assistant *responder.Assistant
	logger    *zap.Logger
	now       func() time.Time
}

func NewChatHandler(assistant *responder.Assistant, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		assistant: assistant,
		logger:    logger.WithFields(log),
		now:       time.Now,
	}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req ChatRequest
	if c.BodyParser(&req) != nil {
		return ErrBadRequest()
	}

	if errs := req.Validate(); len(errs) > 0 {
		return NewValidationError(errs)
	}

	id := uuid.NewString()
	reply := h.assistant.
		WithLogger(logger.ForRequest(h.logger, "http", id)).
		Resolve(req.Message)

	return c.JSON(ChatResponse{
		ID:        id,
		Reply:     reply.Text,
		Rule:      reply.Rule,
		Section:   string(reply.Section),
		Score:     reply.Score,
		Timestamp: h.now().UTC(),
	})
}

type InfoHandler struct {
	assistant *responder.Assistant
}

func NewInfoHandler(assistant *responder.Assistant) *InfoHandler {
	return &InfoHandler{assistant: assistant}
}

func (h *InfoHandler) HandleRules(c *fiber.Ctx) error {
	return c.JSON(h.assistant.Rules())
}

// HandleSection returns the raw text of a section, matched case-insensitively.
func (h *InfoHandler) HandleSection(c *fiber.Ctx) error {
	name := c.Params("name")
	for _, doc := range h.assistant.Store().Documents() {
		if strings.EqualFold(string(doc.Section), name) {
			return c.JSON(fiber.Map{
				"section": doc.Section,
				"text":    doc.Raw,
				"missing": doc.Missing,
			})
		}
	}
	return ErrNotFound("section " + name)
}

type CheckHandler struct{}

func NewCheckHandler() *CheckHandler {
	return &CheckHandler{}
}

func (h CheckHandler) HandleHealthy(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
