// Package export renders decoded telemetry for external consumers: CSV for
// analysis tooling and C typedefs for firmware that must agree with the
// catalogue byte-for-byte.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/psas-avionics/telempack/pkg/codec"
)

// CSVWriter writes records of a single message type as CSV rows. Columns
// are the timestamp followed by the layout's scalar fields in order; blob
// fields have no engineering value and are skipped.
type CSVWriter struct {
	w           *csv.Writer
	mt          *codec.MessageType
	columns     []string
	wroteHeader bool
}

// NewCSVWriter creates a writer for one message type.
func NewCSVWriter(w io.Writer, mt *codec.MessageType) *CSVWriter {
	columns := []string{"Timestamp"}
	for _, f := range mt.Layout.Fields {
		if f.Type == codec.Bytes {
			continue
		}
		columns = append(columns, f.Name)
	}
	return &CSVWriter{w: csv.NewWriter(w), mt: mt, columns: columns}
}

// WriteRecord appends one record as a row, emitting the header row first.
// Records of a different type are rejected.
func (c *CSVWriter) WriteRecord(rec *codec.Record) error {
	if rec.FourCC != c.mt.FourCC {
		return fmt.Errorf("record type %s does not match writer type %s", rec.FourCC, c.mt.FourCC)
	}
	if !c.wroteHeader {
		if err := c.w.Write(c.columns); err != nil {
			return err
		}
		c.wroteHeader = true
	}

	row := make([]string, 0, len(c.columns))
	row = append(row, strconv.FormatUint(rec.Timestamp, 10))
	for _, name := range c.columns[1:] {
		row = append(row, strconv.FormatFloat(rec.Fields[name], 'g', -1, 64))
	}
	return c.w.Write(row)
}

// Flush writes buffered rows to the underlying writer.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
