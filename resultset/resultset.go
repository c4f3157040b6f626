// Package resultset defines the cursor-positioned tabular contract consumed by
// the row and codec packages, plus providers backed by memory, database/sql
// and Hive.
package resultset

// ResultSet is a tabular result with a single shared cursor. MoveToPosition
// must succeed before any cell read, and the readers are only valid for the
// column's current Type. Implementations are not safe for concurrent use.
type ResultSet interface {
	RowCount() int
	ColumnCount() int
	ColumnNames() []string
	// MoveToPosition places the cursor on a 0-based row. -1 means before the
	// first row. It reports whether the position holds a row.
	MoveToPosition(index int) bool
	Type(column int) Type
	Integer(column int) int64
	Float(column int) float64
	String(column int) string
	Blob(column int) []byte
}
