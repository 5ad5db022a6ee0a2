package encoders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/infracollect/emitter/internal/engine"
)

// JSONEncoder implements engine.Encoder for JSON format.
type JSONEncoder struct {
	indent string
}

// NewJSONEncoder creates a JSON encoder. An empty indent produces minified output.
func NewJSONEncoder(indent string) engine.Encoder {
	return &JSONEncoder{
		indent: indent,
	}
}

// Encode writes msg as a single JSON document terminated by a newline.
func (e *JSONEncoder) Encode(ctx context.Context, w io.Writer, msg engine.Message) error {
	encoder := json.NewEncoder(w)
	if e.indent != "" {
		encoder.SetIndent("", e.indent)
	}

	if err := encoder.Encode(msg); err != nil {
		return fmt.Errorf("failed to encode message as JSON: %w", err)
	}

	return nil
}

func (e *JSONEncoder) Format() engine.Format {
	return engine.FormatJSON
}
