package table

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/afs"
)

// Table represents delimited signal data: a header row followed by sample rows
type Table struct {
	Columns []string
	Rows    [][]string
}

// Load downloads and parses a comma delimited file from the backing store
func Load(ctx context.Context, fs afs.Service, URL string) (*Table, error) {
	reader, err := fs.OpenURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", URL, err)
	}
	defer reader.Close()
	result, err := Read(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return result, nil
}

// Read parses comma delimited content; whitespace around delimiters is ignored
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	result := &Table{Columns: trim(header)}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(result.Rows)+1, err)
		}
		result.Rows = append(result.Rows, trim(row))
	}
	return result, nil
}

func trim(values []string) []string {
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	return values
}

// Len returns number of sample rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns column position or -1
func (t *Table) ColumnIndex(name string) int {
	for i, column := range t.Columns {
		if column == name {
			return i
		}
	}
	return -1
}

// TimeColumn returns the name of the time column, the first one when none is named Time
func (t *Table) TimeColumn() string {
	for _, column := range t.Columns {
		if strings.HasPrefix(strings.ToLower(column), "time") {
			return column
		}
	}
	if len(t.Columns) == 0 {
		return ""
	}
	return t.Columns[0]
}

// DataColumns returns all but the time column, in file order
func (t *Table) DataColumns() []string {
	timeColumn := t.TimeColumn()
	var result []string
	for _, column := range t.Columns {
		if column != timeColumn {
			result = append(result, column)
		}
	}
	return result
}

// Column returns column values as numbers
func (t *Table) Column(name string) ([]float64, error) {
	index := t.ColumnIndex(name)
	if index == -1 {
		return nil, fmt.Errorf("unknown column: %s", name)
	}
	result := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		value, err := strconv.ParseFloat(row[index], 64)
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %w", name, i+1, err)
		}
		result[i] = value
	}
	return result, nil
}

// Clone returns a deep copy
func (t *Table) Clone() *Table {
	result := &Table{Columns: append([]string{}, t.Columns...), Rows: make([][]string, len(t.Rows))}
	for i, row := range t.Rows {
		result.Rows[i] = append([]string{}, row...)
	}
	return result
}

// Head returns a table with the first n rows
func (t *Table) Head(n int) *Table {
	if n < 0 || n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n]}
}
