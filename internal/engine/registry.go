package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type EncoderFactory func(logger *zap.Logger) (Encoder, error)

// UnsupportedTypeError is returned when no encoder is registered for a format.
type UnsupportedTypeError struct {
	Category  string   // "encoder"
	Kind      string   // the requested kind
	Available []string // registered kinds
}

func (e *UnsupportedTypeError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unsupported %s type %q: no %ss registered", e.Category, e.Kind, e.Category)
	}
	return fmt.Sprintf("unsupported %s type %q (available: %s)", e.Category, e.Kind, strings.Join(e.Available, ", "))
}

// Registry maps formats to encoder factories. It is filled once at startup and
// read by a single run, so it carries no locking.
type Registry struct {
	encoders map[Format]EncoderFactory
	logger   *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		encoders: make(map[Format]EncoderFactory),
		logger:   logger,
	}
}

func (r *Registry) RegisterEncoder(format Format, factory EncoderFactory) {
	r.encoders[format] = factory
}

func (r *Registry) CreateEncoder(format Format) (Encoder, error) {
	factory, ok := r.encoders[format]
	if !ok {
		return nil, &UnsupportedTypeError{Category: "encoder", Kind: string(format), Available: r.AvailableEncoders()}
	}
	return factory(r.logger.With(zap.String("format", string(format))))
}

func (r *Registry) AvailableEncoders() []string {
	encoders := lo.Map(lo.Keys(r.encoders), func(f Format, _ int) string { return string(f) })
	slices.Sort(encoders)
	return encoders
}
