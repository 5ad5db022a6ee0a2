package encoders

import (
	"context"
	"fmt"
	"io"

	"github.com/infracollect/emitter/internal/engine"
)

// TextEncoder writes the bare message followed by a newline.
type TextEncoder struct{}

func NewTextEncoder() engine.Encoder {
	return &TextEncoder{}
}

func (e *TextEncoder) Encode(ctx context.Context, w io.Writer, msg engine.Message) error {
	if _, err := fmt.Fprintln(w, msg.Msg); err != nil {
		return fmt.Errorf("failed to encode message as text: %w", err)
	}
	return nil
}

func (e *TextEncoder) Format() engine.Format {
	return engine.FormatText
}
