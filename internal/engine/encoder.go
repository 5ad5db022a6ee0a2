package engine

import (
	"context"
	"io"
)

// Encoder renders a Message in one Format.
type Encoder interface {
	// Encode writes the complete payload for msg to w.
	Encode(ctx context.Context, w io.Writer, msg Message) error

	Format() Format
}
