package csvfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heartmarshall/jisho-examples/internal/domain"
)

// Writer streams enriched records as CSV with every field quoted.
// Each record is flushed to the underlying writer before Write returns.
type Writer struct {
	w      *bufio.Writer
	closer io.Closer
}

// NewWriter wraps w. Close does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Create truncates or creates the file at path and returns a Writer that
// closes it on Close.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csvfile: create %s: %w", path, err)
	}
	return &Writer{w: bufio.NewWriter(f), closer: f}, nil
}

// Write emits word, reading, meaning and example_sentence as one row.
func (w *Writer) Write(rec domain.Record) error {
	fields := [...]string{rec.Word, rec.Reading, rec.Meaning, rec.ExampleSentence}
	for i, f := range fields {
		if i > 0 {
			if err := w.w.WriteByte(','); err != nil {
				return fmt.Errorf("csvfile: write: %w", err)
			}
		}
		if err := writeQuoted(w.w, f); err != nil {
			return fmt.Errorf("csvfile: write: %w", err)
		}
	}
	if _, err := w.w.WriteString("\r\n"); err != nil {
		return fmt.Errorf("csvfile: write: %w", err)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("csvfile: flush: %w", err)
	}
	return nil
}

// Close flushes pending output and closes the file opened by Create.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		if w.closer != nil {
			w.closer.Close()
		}
		return fmt.Errorf("csvfile: flush: %w", err)
	}
	if w.closer == nil {
		return nil
	}
	if err := w.closer.Close(); err != nil {
		return fmt.Errorf("csvfile: close: %w", err)
	}
	return nil
}

// writeQuoted writes s surrounded by double quotes, doubling embedded quotes.
func writeQuoted(w *bufio.Writer, s string) error {
	if err := w.WriteByte('"'); err != nil {
		return err
	}
	if _, err := w.WriteString(strings.ReplaceAll(s, `"`, `""`)); err != nil {
		return err
	}
	return w.WriteByte('"')
}
