// Package csvx writes CSV in the export dialect. Data fields are always
// wrapped in double quotes with embedded quotes doubled, and records are
// separated by a bare "\n" with no trailing newline.
package csvx

import (
	"bufio"
	"io"
	"strings"
)

type Writer struct {
	w       *bufio.Writer
	started bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write appends one record. Output is buffered until Flush.
func (w *Writer) Write(record []string) error {
	if w.started {
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	w.started = true

	for i, field := range record {
		if i > 0 {
			if err := w.w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(Quote(field)); err != nil {
			return err
		}
	}
	return nil
}

// WriteHeader appends a record of column names without quoting them.
func (w *Writer) WriteHeader(names []string) error {
	if w.started {
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	w.started = true

	_, err := w.w.WriteString(strings.Join(names, ","))
	return err
}

// WriteAll writes every record and flushes.
func (w *Writer) WriteAll(records [][]string) error {
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Quote returns field wrapped in double quotes with inner quotes doubled.
func Quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
