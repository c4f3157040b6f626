package resultset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/go-data-exporter/tabular/tostring"
)

// matrix implements ResultSet over rows held in memory.
// It is useful for testing and as the materialized form of forward-only sources.
type matrix struct {
	columns []string
	cells   [][]any  // normalized: nil, int64, float64, string or []byte
	types   [][]Type // tag per cell, parallel to cells
	pos     int      // current row, -1 before first, len(cells) after last
}

// FromData creates a ResultSet from a 2D slice of data. Each inner slice is a
// row. When columns is nil the names are inferred from the first row as
// column_0, column_1, ...
//
// Cells are normalized to the five cell kinds: integers and bools become
// Integer, floats become Float, []byte becomes Blob, and any other non-nil
// value is rendered to a String. Unsigned values above math.MaxInt64 do not
// fit an Integer and are kept as their decimal String.
func FromData(columns []string, rows [][]any) (ResultSet, error) {
	if columns == nil && len(rows) != 0 {
		columns = make([]string, len(rows[0]))
		for i := range rows[0] {
			columns[i] = fmt.Sprintf("column_%d", i)
		}
	}
	m := &matrix{
		columns: append([]string(nil), columns...),
		cells:   make([][]any, 0, len(rows)),
		types:   make([][]Type, 0, len(rows)),
		pos:     -1,
	}
	for i, r := range rows {
		if len(r) != len(m.columns) {
			return nil, errors.Errorf("length of row %d != number of columns: %d != %d", i+1, len(r), len(m.columns))
		}
		m.appendRow(r)
	}
	return m, nil
}

func (m *matrix) appendRow(r []any) {
	cells := make([]any, len(r))
	types := make([]Type, len(r))
	for i, v := range r {
		cells[i], types[i] = normalize(v)
	}
	m.cells = append(m.cells, cells)
	m.types = append(m.types, types)
}

func normalize(v any) (any, Type) {
	switch v := v.(type) {
	case nil:
		return nil, TypeNull
	case string:
		return v, TypeString
	case []byte:
		if v == nil {
			return nil, TypeNull
		}
		return append([]byte{}, v...), TypeBlob
	case bool:
		if v {
			return int64(1), TypeInteger
		}
		return int64(0), TypeInteger
	case int:
		return int64(v), TypeInteger
	case int8:
		return int64(v), TypeInteger
	case int16:
		return int64(v), TypeInteger
	case int32:
		return int64(v), TypeInteger
	case int64:
		return v, TypeInteger
	case uint:
		if uint64(v) > math.MaxInt64 {
			return strconv.FormatUint(uint64(v), 10), TypeString
		}
		return int64(v), TypeInteger
	case uint8:
		return int64(v), TypeInteger
	case uint16:
		return int64(v), TypeInteger
	case uint32:
		return int64(v), TypeInteger
	case uint64:
		if v > math.MaxInt64 {
			return strconv.FormatUint(v, 10), TypeString
		}
		return int64(v), TypeInteger
	case float32:
		return float64(v), TypeFloat
	case float64:
		return v, TypeFloat
	}
	s := tostring.ToString(v)
	if s.IsNULL {
		return nil, TypeNull
	}
	return s.String, TypeString
}

func (m *matrix) RowCount() int {
	return len(m.cells)
}

func (m *matrix) ColumnCount() int {
	return len(m.columns)
}

func (m *matrix) ColumnNames() []string {
	return append([]string(nil), m.columns...)
}

// MoveToPosition clamps the cursor to [-1, RowCount] and reports whether it
// landed on a row.
func (m *matrix) MoveToPosition(index int) bool {
	switch {
	case index < 0:
		m.pos = -1
		return false
	case index >= len(m.cells):
		m.pos = len(m.cells)
		return false
	}
	m.pos = index
	return true
}

func (m *matrix) cell(column int) (any, Type) {
	if m.pos < 0 || m.pos >= len(m.cells) || column < 0 || column >= len(m.columns) {
		return nil, TypeNull
	}
	return m.cells[m.pos][column], m.types[m.pos][column]
}

func (m *matrix) Type(column int) Type {
	_, t := m.cell(column)
	return t
}

func (m *matrix) Integer(column int) int64 {
	v, _ := m.cell(column)
	i, _ := v.(int64)
	return i
}

func (m *matrix) Float(column int) float64 {
	v, _ := m.cell(column)
	f, _ := v.(float64)
	return f
}

func (m *matrix) String(column int) string {
	v, _ := m.cell(column)
	s, _ := v.(string)
	return s
}

func (m *matrix) Blob(column int) []byte {
	v, _ := m.cell(column)
	b, _ := v.([]byte)
	return b
}
