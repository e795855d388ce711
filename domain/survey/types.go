package survey

import (
	"strconv"
	"strings"
)

// Table is the in-memory survey dataset: one row per respondent, columns
// keyed by survey variable name. It is loaded once and read-only afterwards;
// cells keep the trimmed string form they had in the source file, so no
// schema is enforced at load time.
type Table struct {
	columns []string
	index   map[string]int
	cells   map[string][]string
	rows    int
}

// NewTable builds a table from a header row and data rows. Rows shorter than
// the header are padded with empty cells; surplus cells are dropped.
func NewTable(headers []string, rows [][]string) (*Table, error) {
	if len(headers) == 0 {
		return nil, ErrNoColumns
	}

	t := &Table{
		columns: make([]string, 0, len(headers)),
		index:   make(map[string]int, len(headers)),
		cells:   make(map[string][]string, len(headers)),
		rows:    len(rows),
	}

	for i, header := range headers {
		name := strings.TrimSpace(header)
		if name == "" {
			// Unnamed columns cannot be addressed, so they are dropped.
			continue
		}
		if _, exists := t.index[name]; exists {
			// Duplicate header: first occurrence wins, matching how the
			// upstream extract tools behave.
			continue
		}
		t.index[name] = i
		t.columns = append(t.columns, name)

		column := make([]string, len(rows))
		for r, row := range rows {
			if i < len(row) {
				column[r] = strings.TrimSpace(row[i])
			}
		}
		t.cells[name] = column
	}

	if len(t.columns) == 0 {
		return nil, ErrNoColumns
	}

	return t, nil
}

// NumRows returns the number of respondent rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumColumns returns the number of survey variables.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Columns returns the variable names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the named survey variable exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the raw cells for one survey variable in row order.
func (t *Table) Column(name string) ([]string, error) {
	cells, ok := t.cells[name]
	if !ok {
		return nil, NewColumnMissingError(name)
	}
	return cells, nil
}

// Numeric returns the parseable values of one column as floats. Blank and
// non-numeric cells are treated as missing responses and skipped.
func (t *Table) Numeric(name string) ([]float64, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(cells))
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values, nil
}
