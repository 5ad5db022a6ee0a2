package engine

import "errors"

// Request is the validated form of a single invocation. A zero OutputPath means
// the payload goes to standard output.
type Request struct {
	OutputPath string
	Format     Format
}

// NewRequest validates raw flag values. outputSet reports whether the output flag
// was given at all, so that an explicit empty path is rejected instead of being
// mistaken for standard output.
func NewRequest(outputPath string, outputSet bool, format string) (Request, error) {
	if outputSet && outputPath == "" {
		return Request{}, &UsageError{Err: errors.New("output path must not be empty")}
	}

	f, err := ParseFormat(format)
	if err != nil {
		return Request{}, err
	}

	return Request{OutputPath: outputPath, Format: f}, nil
}

// ToStdout reports whether the request targets standard output.
func (r Request) ToStdout() bool {
	return r.OutputPath == ""
}

// Destination names where the payload goes, for logs and errors.
func (r Request) Destination() string {
	if r.ToStdout() {
		return "stdout"
	}
	return r.OutputPath
}
