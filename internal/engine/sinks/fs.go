package sinks

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/infracollect/emitter/internal/engine"
	"github.com/spf13/afero"
)

type FilesystemSink struct {
	fs afero.Fs
}

// NewFilesystemSink creates a sink that writes whole files on fs. Missing parent
// directories are an error, not created.
func NewFilesystemSink(fs afero.Fs) engine.Sink {
	return &FilesystemSink{fs: fs}
}

func NewOsFilesystemSink() engine.Sink {
	return NewFilesystemSink(afero.NewOsFs())
}

func (s *FilesystemSink) Name() string {
	return fmt.Sprintf("filesystem(%s)", s.fs.Name())
}

func (s *FilesystemSink) Kind() string {
	return "filesystem"
}

// Write creates or truncates path, then writes, flushes and closes it. The file
// is closed on every path; the first failure wins.
func (s *FilesystemSink) Write(ctx context.Context, path string, data io.Reader) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &engine.IoError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &engine.IoError{Op: "close", Path: path, Err: closeErr}
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := io.Copy(bw, data); err != nil {
		return &engine.IoError{Op: "write", Path: path, Err: err}
	}

	if err := bw.Flush(); err != nil {
		return &engine.IoError{Op: "flush", Path: path, Err: err}
	}

	return nil
}

func (s *FilesystemSink) Close(ctx context.Context) error {
	return nil
}
