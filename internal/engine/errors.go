package engine

import "fmt"

// UsageError reports malformed or unrecognized command-line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// IoError reports a failure while opening, writing, flushing or closing the
// destination. An empty Path means standard output.
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	path := e.Path
	if path == "" {
		path = "stdout"
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}
