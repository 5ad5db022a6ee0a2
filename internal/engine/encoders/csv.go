package encoders

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/infracollect/emitter/internal/engine"
)

var csvHeader = []string{"msg"}

// CSVEncoder writes a header row and one record row, LF terminated.
type CSVEncoder struct{}

func NewCSVEncoder() engine.Encoder {
	return &CSVEncoder{}
}

func (e *CSVEncoder) Encode(ctx context.Context, w io.Writer, msg engine.Message) error {
	cw := csv.NewWriter(w)

	if err := cw.WriteAll([][]string{csvHeader, {msg.Msg}}); err != nil {
		return fmt.Errorf("failed to encode message as CSV: %w", err)
	}

	return nil
}

func (e *CSVEncoder) Format() engine.Format {
	return engine.FormatCSV
}
