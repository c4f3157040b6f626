package row

import (
	"bytes"

	"github.com/go-data-exporter/tabular/resultset"
	"github.com/go-data-exporter/tabular/tostring"
)

// Value is one decoded cell: an Integer, Float, String, Blob or Null.
// The zero Value is Null.
type Value struct {
	typ resultset.Type
	i   int64
	f   float64
	s   string
	b   []byte
}

func NullValue() Value {
	return Value{}
}

func IntegerValue(v int64) Value {
	return Value{typ: resultset.TypeInteger, i: v}
}

func FloatValue(v float64) Value {
	return Value{typ: resultset.TypeFloat, f: v}
}

func StringValue(v string) Value {
	return Value{typ: resultset.TypeString, s: v}
}

// BlobValue copies v. A nil slice gives Null.
func BlobValue(v []byte) Value {
	if v == nil {
		return NullValue()
	}
	return Value{typ: resultset.TypeBlob, b: append([]byte{}, v...)}
}

// Type returns the kind of the value. Null values report TypeNull.
func (v Value) Type() resultset.Type {
	return v.typ
}

func (v Value) IsNull() bool {
	return v.typ == resultset.TypeNull
}

// Any returns the value as nil, int64, float64, string or []byte.
func (v Value) Any() any {
	switch v.typ {
	case resultset.TypeInteger:
		return v.i
	case resultset.TypeFloat:
		return v.f
	case resultset.TypeString:
		return v.s
	case resultset.TypeBlob:
		return append([]byte{}, v.b...)
	}
	return nil
}

// String renders the value with the default conversion; Null is "null".
func (v Value) String() string {
	return tostring.Display(v.Any())
}

// Equal reports whether both values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case resultset.TypeInteger:
		return v.i == o.i
	case resultset.TypeFloat:
		return v.f == o.f
	case resultset.TypeString:
		return v.s == o.s
	case resultset.TypeBlob:
		return bytes.Equal(v.b, o.b)
	}
	return true
}
