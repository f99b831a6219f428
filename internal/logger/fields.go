package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured field keys shared by every package that logs a decision.
const (
	FieldProvider  = "ai_provider"
	FieldModel     = "ai_model"
	FieldRequestID = "request_id"
	FieldDocument  = "document"
	FieldFormat    = "format"
	FieldMode      = "decision_mode"
)

// StringFields turns key/value pairs into zap fields. Keys and values are trimmed and
// a pair with an empty key or value is dropped; a trailing key without a value is ignored.
func StringFields(pairs ...string) []zap.Field {
	result := make([]zap.Field, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key := strings.TrimSpace(pairs[i])
		value := strings.TrimSpace(pairs[i+1])
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger. A nil logger is replaced with a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithBackend scopes a logger to the reasoning backend in use.
func WithBackend(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, StringFields(FieldProvider, provider, FieldModel, model)...)
}

// WithRequest scopes a logger to one decision request.
func WithRequest(logger *zap.Logger, requestID, document, format string) *zap.Logger {
	return WithFields(logger, StringFields(
		FieldRequestID, requestID,
		FieldDocument, document,
		FieldFormat, format,
	)...)
}

// Mode reports which path produced a decision.
func Mode(mode string) zap.Field {
	return zap.String(FieldMode, mode)
}
