package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldProvider is the structured log field key for the generative
	// reasoning provider.
	FieldProvider = "ai_provider"
	// FieldModel is the structured log field key for the generative
	// reasoning model.
	FieldModel = "ai_model"
)

// WithAIFields attaches the provider and model fields used by the generative
// reasoning logs. Blank values are dropped to keep entries compact, and a nil
// logger defaults to a no-op one so callers can chain unconditionally.
func WithAIFields(logger *zap.Logger, provider, model string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	fields := make([]zap.Field, 0, 2)
	if provider = strings.TrimSpace(provider); provider != "" {
		fields = append(fields, zap.String(FieldProvider, provider))
	}
	if model = strings.TrimSpace(model); model != "" {
		fields = append(fields, zap.String(FieldModel, model))
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}
