package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Writer appends run records as CSV, writing the header once.
type Writer struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewWriter writes CSV records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// CreateFile creates (or truncates) a CSV file, making parent directories.
func CreateFile(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	return &Writer{w: f, closer: f}, nil
}

// Write appends one record.
func (wr *Writer) Write(rec RunRecord) error {
	records := []RunRecord{rec}

	if !wr.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, wr.w); err != nil {
			return fmt.Errorf("writing run record: %w", err)
		}
		wr.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, wr.w); err != nil {
		return fmt.Errorf("writing run record: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the writer owns one.
func (wr *Writer) Close() error {
	if wr.closer == nil {
		return nil
	}
	return wr.closer.Close()
}

// ReadRecords parses run records previously written by a Writer.
func ReadRecords(r io.Reader) ([]RunRecord, error) {
	var records []RunRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading run records: %w", err)
	}
	return records, nil
}
