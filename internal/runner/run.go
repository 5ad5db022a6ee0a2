package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/infracollect/emitter/internal/engine"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Config carries the process resources a Runner writes to. Zero fields fall
// back to os.Stdout, the OS filesystem and the built-in encoders.
type Config struct {
	Stdout   io.Writer
	Fs       afero.Fs
	Registry *engine.Registry
}

type Runner struct {
	logger  *zap.Logger
	request engine.Request
	encoder engine.Encoder
	sink    engine.Sink
}

func New(logger *zap.Logger, request engine.Request, cfg Config) (*Runner, error) {
	logger.Debug("creating runner",
		zap.String("format", request.Format.String()),
		zap.String("destination", request.Destination()),
	)

	if cfg.Registry == nil {
		cfg.Registry = BuildRegistry(logger.Named("registry"))
	}

	encoder, err := cfg.Registry.CreateEncoder(request.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to build encoder: %w", err)
	}

	return &Runner{
		logger:  logger,
		request: request,
		encoder: encoder,
		sink:    buildSink(request, cfg),
	}, nil
}

// Run builds the payload and writes it to the destination. Nothing is opened
// until the payload is complete.
func (r *Runner) Run(ctx context.Context) error {
	payload, err := r.BuildPayload(ctx)
	if err != nil {
		return fmt.Errorf("failed to build payload: %w", err)
	}

	if err := r.WritePayload(ctx, payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	return nil
}

// BuildPayload renders the demo message with the request's encoder.
func (r *Runner) BuildPayload(ctx context.Context) ([]byte, error) {
	r.logger.Debug("building payload", zap.String("format", r.encoder.Format().String()))

	var buf bytes.Buffer
	if err := r.encoder.Encode(ctx, &buf, engine.DemoMessage()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WritePayload hands payload to the sink and always closes it. The first
// failure is returned.
func (r *Runner) WritePayload(ctx context.Context, payload []byte) (err error) {
	logger := r.logger.With(
		zap.String("sink", r.sink.Name()),
		zap.String("destination", r.request.Destination()),
	)
	logger.Debug("writing payload", zap.Int("bytes", len(payload)))

	defer func() {
		if closeErr := r.sink.Close(ctx); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := r.sink.Write(ctx, r.request.OutputPath, bytes.NewReader(payload)); err != nil {
		return err
	}

	logger.Info("payload written", zap.Int("bytes", len(payload)))
	return nil
}

func defaultStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
