package sinks

import (
	"bufio"
	"context"
	"io"

	"github.com/infracollect/emitter/internal/engine"
)

// StreamSink writes to a stream it does not own, such as standard output.
// Writes are buffered and reach the stream on Close.
type StreamSink struct {
	w *bufio.Writer
}

func NewStreamSink(w io.Writer) engine.Sink {
	return &StreamSink{w: bufio.NewWriter(w)}
}

func (s *StreamSink) Name() string {
	return "stream"
}

func (s *StreamSink) Kind() string {
	return "stream"
}

// Write copies data into the buffer. path is ignored; a stream has no name.
func (s *StreamSink) Write(ctx context.Context, path string, data io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := io.Copy(s.w, data); err != nil {
		return &engine.IoError{Op: "write", Err: err}
	}
	return nil
}

// Close flushes the buffer. The underlying stream stays open.
func (s *StreamSink) Close(ctx context.Context) error {
	if err := s.w.Flush(); err != nil {
		return &engine.IoError{Op: "flush", Err: err}
	}
	return nil
}
