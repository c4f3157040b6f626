// Package row materializes the rows of a resultset.ResultSet into immutable
// Row snapshots and extracts typed values from them.
//
// Every function here moves the ResultSet's shared cursor. Calls against the
// same ResultSet must not overlap; use one ResultSet per concurrent consumer.
package row

import "github.com/go-data-exporter/tabular/resultset"

func RowCount(rs resultset.ResultSet) int {
	return rs.RowCount()
}

func ColumnCount(rs resultset.ResultSet) int {
	return rs.ColumnCount()
}

// At positions rs on index and decodes every column of that row. An index
// outside [0, RowCount) is an *IndexOutOfRangeError.
func At(rs resultset.ResultSet, index int) (Row, error) {
	if !rs.MoveToPosition(index) {
		return Row{}, &IndexOutOfRangeError{Index: index, Size: rs.RowCount()}
	}
	values := make([]Value, rs.ColumnCount())
	for i := range values {
		values[i] = Decode(rs, i)
	}
	return Row{values: values}, nil
}

// Decode reads one cell of the current row according to its type tag.
// It never fails: unknown tags decode to Null.
func Decode(rs resultset.ResultSet, column int) Value {
	switch rs.Type(column) {
	case resultset.TypeInteger:
		return IntegerValue(rs.Integer(column))
	case resultset.TypeFloat:
		return FloatValue(rs.Float(column))
	case resultset.TypeString:
		return StringValue(rs.String(column))
	case resultset.TypeBlob:
		return BlobValue(rs.Blob(column))
	}
	return NullValue()
}

// Iterator walks a ResultSet from its first row to its last.
//
//	it := row.Iterate(rs)
//	for it.Next() {
//		r := it.Row()
//	}
//	err := it.Err()
type Iterator struct {
	rs    resultset.ResultSet
	index int
	row   Row
	err   error
}

// Iterate rewinds rs to before its first row and returns a fresh Iterator.
func Iterate(rs resultset.ResultSet) *Iterator {
	rs.MoveToPosition(-1)
	return &Iterator{rs: rs, index: -1}
}

// Next advances to the next row. It returns false after the last row or on
// the first error.
func (it *Iterator) Next() bool {
	if it.err != nil || it.index+1 >= it.rs.RowCount() {
		return false
	}
	r, err := At(it.rs, it.index+1)
	if err != nil {
		it.err = err
		return false
	}
	it.index++
	it.row = r
	return true
}

// Row returns the row read by the last successful Next.
func (it *Iterator) Row() Row {
	return it.row
}

// Index returns the 0-based position of Row.
func (it *Iterator) Index() int {
	return it.index
}

func (it *Iterator) Err() error {
	return it.err
}

// ForEach calls visit with every row in ascending order.
func ForEach(rs resultset.ResultSet, visit func(Row)) error {
	return ForEachIndexed(rs, func(_ int, r Row) {
		visit(r)
	})
}

// ForEachIndexed calls visit with every row and its index in ascending order.
func ForEachIndexed(rs resultset.ResultSet, visit func(int, Row)) error {
	for index, n := 0, rs.RowCount(); index < n; index++ {
		r, err := At(rs, index)
		if err != nil {
			return err
		}
		visit(index, r)
	}
	return nil
}
