package engine

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/samber/lo"
)

// Format selects how the payload is serialized.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatText

// maxSuggestionDistance bounds how far a typo may be from a known format
// before we stop suggesting it.
const maxSuggestionDistance = 2

// Formats returns every supported format in declaration order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatCSV}
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat resolves a user supplied format name. Matching ignores case and
// surrounding whitespace. An empty value yields DefaultFormat.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return DefaultFormat, nil
	}

	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}

	return "", &UsageError{Err: &UnknownFormatError{
		Value:      s,
		Available:  Formats(),
		Suggestion: suggestFormat(name),
	}}
}

// UnknownFormatError is returned when a format name does not match any Format.
type UnknownFormatError struct {
	Value      string
	Available  []Format
	Suggestion Format
}

func (e *UnknownFormatError) Error() string {
	available := strings.Join(lo.Map(e.Available, func(f Format, _ int) string { return string(f) }), ", ")
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown format %q, did you mean %q? (available: %s)", e.Value, e.Suggestion, available)
	}
	return fmt.Sprintf("unknown format %q (available: %s)", e.Value, available)
}

func suggestFormat(name string) Format {
	var (
		best     Format
		bestDist = maxSuggestionDistance + 1
	)
	for _, f := range Formats() {
		if d := levenshtein.Distance(name, string(f), nil); d < bestDist {
			best, bestDist = f, d
		}
	}
	return best
}
