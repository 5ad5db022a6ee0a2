package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        Format
		wantErr     bool
		errContains []string
	}{
		{name: "text", input: "text", want: FormatText},
		{name: "json", input: "json", want: FormatJSON},
		{name: "csv", input: "csv", want: FormatCSV},
		{name: "upper case", input: "JSON", want: FormatJSON},
		{name: "mixed case with spaces", input: "  Csv ", want: FormatCSV},
		{name: "empty defaults to text", input: "", want: FormatText},
		{
			name:        "unknown without suggestion",
			input:       "xml",
			wantErr:     true,
			errContains: []string{`unknown format "xml"`, "available: text, json, csv"},
		},
		{
			name:        "typo gets a suggestion",
			input:       "jsn",
			wantErr:     true,
			errContains: []string{`did you mean "json"?`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var usageErr *UsageError
				assert.ErrorAs(t, err, &usageErr)
				for _, s := range tt.errContains {
					assert.ErrorContains(t, err, s)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownFormatError_NoSuggestionForDistantValue(t *testing.T) {
	_, err := ParseFormat("yaml-ish")
	require.Error(t, err)

	var unknown *UnknownFormatError
	require.ErrorAs(t, err, &unknown)
	assert.Empty(t, unknown.Suggestion)
	assert.Equal(t, Formats(), unknown.Available)
}
