package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const bom = "\ufeff"

// ErrEmpty is returned when a file has no header row.
var ErrEmpty = errors.New("empty file: no header row")

// Table is a header plus data rows as read from a delimited file.
type Table struct {
	Header []string
	Rows   [][]string
	// BOM is set when a UTF-8 byte order mark was stripped from Header[0].
	BOM bool
}

// Row is a single data row addressed by column name.
type Row struct {
	index  map[string]int
	values []string
}

// Get returns the value of a column, or the empty string when the column is
// unknown or the row is too short to hold it.
func (r Row) Get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

// Records returns every data row addressable by column name, in file order.
// When a header name repeats, the last occurrence wins.
func (t *Table) Records() []Row {
	index := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		index[h] = i
	}
	out := make([]Row, len(t.Rows))
	for i, values := range t.Rows {
		out[i] = Row{index: index, values: values}
	}
	return out
}

// RawHeader returns the header as it appeared in the file, byte order mark
// included.
func (t *Table) RawHeader() []string {
	header := append([]string(nil), t.Header...)
	if t.BOM && len(header) > 0 {
		header[0] = bom + header[0]
	}
	return header
}

// Read parses a comma-delimited stream. The first record is the header.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	t := &Table{Header: rows[0], Rows: rows[1:]}
	if len(t.Header) > 0 && strings.HasPrefix(t.Header[0], bom) {
		t.Header[0] = strings.TrimPrefix(t.Header[0], bom)
		t.BOM = true
	}
	return t, nil
}

// ReadFile reads a whole delimited file.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// Write writes the header followed by rows.
func Write(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

// WriteFile creates or truncates path and writes the table to it.
func WriteFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, header, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
