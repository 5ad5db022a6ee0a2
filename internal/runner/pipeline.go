package runner

import (
	"github.com/infracollect/emitter/internal/engine"
	"github.com/infracollect/emitter/internal/engine/encoders"
	"github.com/infracollect/emitter/internal/engine/sinks"
	"go.uber.org/zap"
)

// BuildRegistry creates a new registry with all encoders registered.
func BuildRegistry(logger *zap.Logger) *engine.Registry {
	registry := engine.NewRegistry(logger)

	encoders.Register(registry)

	return registry
}

// buildSink picks the destination for a request.
//
//   - No output path: stream sink on stdout
//   - Output path: filesystem sink on cfg.Fs (OS filesystem when unset)
func buildSink(request engine.Request, cfg Config) engine.Sink {
	if request.ToStdout() {
		return sinks.NewStreamSink(defaultStdout(cfg.Stdout))
	}

	if cfg.Fs == nil {
		return sinks.NewOsFilesystemSink()
	}
	return sinks.NewFilesystemSink(cfg.Fs)
}
