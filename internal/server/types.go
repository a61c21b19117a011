package server

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/spigell/career-assistant/internal/responder"
)

var validate = validator.New()

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Message string              `json:"message" validate:"required"`
	History []responder.Message `json:"history" validate:"omitempty,dive"`
}

// Validate returns field errors keyed by field name, or nil.
func (r *ChatRequest) Validate() map[string]string {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}

	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		fields[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
	}
	return fields
}

// ChatResponse is the reply to a chat request.
type ChatResponse struct {
	ID        string    `json:"id"`
	Reply     string    `json:"reply"`
	Rule      string    `json:"rule"`
	Section   string    `json:"section,omitempty"`
	Score     float64   `json:"score,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
