package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/natefinch/atomic"
)

// DefaultFileName is the output file, relative to the working directory.
const DefaultFileName = "dscp_tos_conv_table.csv"

// WriteCSV writes the header followed by every row, LF-terminated.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range t {
		if err := cw.Write(row.Record()); err != nil {
			return fmt.Errorf("failed to write row for dscp %d: %w", row.DSCPDec, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile renders the table in memory and then replaces path atomically, so
// a failed run never leaves a truncated file behind.
func WriteFile(path string, t Table) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, t); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
