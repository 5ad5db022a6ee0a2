package engine

import (
	"context"
	"io"
)

// Sink is a destination for the payload. Close releases the destination and
// flushes anything still buffered; it must be called on every path.
type Sink interface {
	Named
	Closer
	Write(ctx context.Context, path string, data io.Reader) error
}
