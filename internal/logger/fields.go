package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldRule is the structured log field key for the rule that produced a reply.
	FieldRule = "rule"
	// FieldSection is the structured log field key for a portfolio section.
	FieldSection = "section"
	// FieldRequestID is the structured log field key for an API request id.
	FieldRequestID = "request_id"
	// FieldTransport names the surface a message arrived on (cli, http, mcp).
	FieldTransport = "transport"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ReplyFields describes how a reply was produced. Empty values are dropped.
func ReplyFields(rule, section string) []zap.Field {
	return StringFields(
		StringField{Key: FieldRule, Value: rule},
		StringField{Key: FieldSection, Value: section},
	)
}

// MessageField returns a truncated preview of a user message.
func MessageField(message string, limit int) zap.Field {
	return zap.String("message", TruncateForLog(message, limit))
}

// ForRequest tags logger with the transport and request id of one exchange.
func ForRequest(logger *zap.Logger, transport, requestID string) *zap.Logger {
	return WithFields(logger, StringFields(
		StringField{Key: FieldTransport, Value: transport},
		StringField{Key: FieldRequestID, Value: requestID},
	)...)
}
