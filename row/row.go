package row

import (
	"fmt"
	"strings"

	"github.com/go-data-exporter/tabular/resultset"
)

// Row is an immutable snapshot of one result set position.
type Row struct {
	values []Value
}

// New builds a Row from values. The slice is copied.
func New(values ...Value) Row {
	return Row{values: append([]Value(nil), values...)}
}

func (r Row) Len() int {
	return len(r.values)
}

// Values returns a copy of the row's values in column order.
func (r Row) Values() []Value {
	return append([]Value(nil), r.values...)
}

// Value returns the decoded value at column i.
func (r Row) Value(i int) (Value, error) {
	if i < 0 || i >= len(r.values) {
		return Value{}, &IndexOutOfRangeError{Index: i, Size: len(r.values)}
	}
	return r.values[i], nil
}

// String joins the values' string forms with a single space.
func (r Row) String() string {
	parts := make([]string, len(r.values))
	for i, v := range r.values {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// Equal reports whether both rows hold equal values in the same order.
func (r Row) Equal(o Row) bool {
	if len(r.values) != len(o.values) {
		return false
	}
	for i := range r.values {
		if !r.values[i].Equal(o.values[i]) {
			return false
		}
	}
	return true
}

// As returns the value at column i as a T. T is one of int64, float64,
// string or []byte; a Null cell or a cell of another kind is a
// *TypeMismatchError.
func As[T any](r Row, i int) (T, error) {
	var zero T
	v, err := r.Value(i)
	if err != nil {
		return zero, err
	}
	t, ok := v.Any().(T)
	if !ok {
		return zero, &TypeMismatchError{Index: i, Want: fmt.Sprintf("%T", zero), Got: v.Type()}
	}
	return t, nil
}

// nullable returns the value at column i, or ok=false when it is Null.
func nullable(r Row, i int, want resultset.Type) (v Value, ok bool, err error) {
	v, err = r.Value(i)
	if err != nil {
		return v, false, err
	}
	if v.IsNull() {
		return v, false, nil
	}
	if v.Type() != want {
		return v, false, &TypeMismatchError{Index: i, Want: want.String(), Got: v.Type()}
	}
	return v, true, nil
}

func strict(r Row, i int, want resultset.Type) (Value, error) {
	v, err := r.Value(i)
	if err != nil {
		return v, err
	}
	if v.Type() != want {
		return v, &TypeMismatchError{Index: i, Want: want.String(), Got: v.Type()}
	}
	return v, nil
}

func (r Row) IntegerAt(i int) (int64, error) {
	v, err := strict(r, i, resultset.TypeInteger)
	return v.i, err
}

func (r Row) FloatAt(i int) (float64, error) {
	v, err := strict(r, i, resultset.TypeFloat)
	return v.f, err
}

func (r Row) StringAt(i int) (string, error) {
	v, err := strict(r, i, resultset.TypeString)
	return v.s, err
}

// BlobAt returns a copy of the blob at column i.
func (r Row) BlobAt(i int) ([]byte, error) {
	v, err := strict(r, i, resultset.TypeBlob)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, v.b...), nil
}

// NullableIntegerAt is IntegerAt that returns nil instead of failing on Null.
func (r Row) NullableIntegerAt(i int) (*int64, error) {
	v, ok, err := nullable(r, i, resultset.TypeInteger)
	if !ok {
		return nil, err
	}
	return &v.i, nil
}

func (r Row) NullableFloatAt(i int) (*float64, error) {
	v, ok, err := nullable(r, i, resultset.TypeFloat)
	if !ok {
		return nil, err
	}
	return &v.f, nil
}

func (r Row) NullableStringAt(i int) (*string, error) {
	v, ok, err := nullable(r, i, resultset.TypeString)
	if !ok {
		return nil, err
	}
	return &v.s, nil
}

// NullableBlobAt returns a nil slice for a Null cell.
func (r Row) NullableBlobAt(i int) ([]byte, error) {
	v, ok, err := nullable(r, i, resultset.TypeBlob)
	if !ok {
		return nil, err
	}
	return append([]byte{}, v.b...), nil
}
