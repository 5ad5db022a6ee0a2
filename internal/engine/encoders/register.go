package encoders

import (
	"github.com/infracollect/emitter/internal/engine"
	"go.uber.org/zap"
)

// Register adds the text, JSON and CSV encoders to the registry.
func Register(registry *engine.Registry) {
	registry.RegisterEncoder(engine.FormatText, func(*zap.Logger) (engine.Encoder, error) {
		return NewTextEncoder(), nil
	})
	registry.RegisterEncoder(engine.FormatJSON, func(*zap.Logger) (engine.Encoder, error) {
		return NewJSONEncoder(""), nil
	})
	registry.RegisterEncoder(engine.FormatCSV, func(*zap.Logger) (engine.Encoder, error) {
		return NewCSVEncoder(), nil
	})
}
