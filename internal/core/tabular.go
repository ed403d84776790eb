package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ImportRow is one data row keyed by header name. Number is 1-based and
// excludes the header.
type ImportRow struct {
	Number int
	Fields map[string]string
}

// Line returns the row's line in the file, counting the header as line 1.
func (r ImportRow) Line() int {
	return r.Number + 1
}

// Get returns the raw value of column, or "" when the row lacks it.
func (r ImportRow) Get(column string) string {
	return r.Fields[column]
}

// Table is parsed CSV text: ordered header columns and ordered rows.
type Table struct {
	Columns   []string
	Rows      []ImportRow
	Delimiter rune
}

// HasColumn reports whether name is a header column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ParseTable reads text as delimited rows. The first record is the header.
// Quotes are handled leniently, blank lines are skipped, short rows leave
// trailing columns absent and extra fields are dropped. A repeated header
// name keeps the value of its last occurrence.
func ParseTable(text string, delim rune) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	table := &Table{Delimiter: delim}

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return table, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrInvalidCSV, err)
	}
	for _, h := range header {
		table.Columns = append(table.Columns, strings.TrimSpace(h))
	}
	if len(table.Columns) == 1 && table.Columns[0] == "" {
		table.Columns = nil
	}

	for n := 1; ; n++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidCSV, n, err)
		}

		fields := make(map[string]string, len(table.Columns))
		for i, v := range record {
			if i >= len(table.Columns) {
				break
			}
			fields[table.Columns[i]] = v
		}
		table.Rows = append(table.Rows, ImportRow{Number: n, Fields: fields})
	}

	return table, nil
}

// DetectTable parses text semicolon-first and falls back to commas when the
// semicolon header is empty or is a single comma-separated cell. When
// mustHave is non-empty, a semicolon header lacking it also triggers the
// fallback. Both attempts empty yields ErrNoColumnsDetected.
func DetectTable(text, mustHave string) (*Table, error) {
	semi, err := ParseTable(text, ';')
	if err != nil {
		return nil, err
	}
	if !needsCommaFallback(semi, mustHave) {
		return semi, nil
	}

	comma, err := ParseTable(text, ',')
	if err != nil {
		return nil, err
	}
	switch {
	case len(comma.Columns) > 0:
		return comma, nil
	case len(semi.Columns) > 0:
		return semi, nil
	default:
		return nil, ErrNoColumnsDetected
	}
}

func needsCommaFallback(t *Table, mustHave string) bool {
	if len(t.Columns) == 0 {
		return true
	}
	if len(t.Columns) == 1 && strings.Contains(t.Columns[0], ",") {
		return true
	}
	return mustHave != "" && !t.HasColumn(mustHave)
}

// ApproxRowCount counts newline-separated lines of the trimmed text, minus
// the header. Quoted fields spanning lines are over-counted.
func ApproxRowCount(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return len(strings.Split(trimmed, "\n")) - 1
}
