package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		outputSet   bool
		format      string
		want        Request
		wantErr     bool
		errContains string
	}{
		{
			name: "defaults to text on stdout",
			want: Request{Format: FormatText},
		},
		{
			name:      "file output",
			output:    "out.json",
			outputSet: true,
			format:    "json",
			want:      Request{OutputPath: "out.json", Format: FormatJSON},
		},
		{
			name:        "explicit empty output",
			outputSet:   true,
			wantErr:     true,
			errContains: "output path must not be empty",
		},
		{
			name:        "unknown format",
			format:      "xml",
			wantErr:     true,
			errContains: `unknown format "xml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(tt.output, tt.outputSet, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				var usageErr *UsageError
				assert.ErrorAs(t, err, &usageErr)
				assert.ErrorContains(t, err, tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestRequest_Destination(t *testing.T) {
	assert.True(t, Request{}.ToStdout())
	assert.Equal(t, "stdout", Request{}.Destination())

	req := Request{OutputPath: "/tmp/out.csv"}
	assert.False(t, req.ToStdout())
	assert.Equal(t, "/tmp/out.csv", req.Destination())
}

func TestIoError(t *testing.T) {
	err := &IoError{Op: "open", Path: "/nonexistent-dir/out.txt", Err: assert.AnError}
	assert.EqualError(t, err, "failed to open /nonexistent-dir/out.txt: "+assert.AnError.Error())
	assert.ErrorIs(t, err, assert.AnError)

	stdoutErr := &IoError{Op: "flush", Err: assert.AnError}
	assert.Contains(t, stdoutErr.Error(), "failed to flush stdout")
}
