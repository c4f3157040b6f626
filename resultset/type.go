package resultset

import "fmt"

// Type is the per-cell tag a ResultSet reports for the current row.
type Type int

const (
	TypeNull Type = iota
	TypeInteger
	TypeFloat
	TypeString
	TypeBlob
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBlob:
		return "blob"
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// Metadata describes the cell handed to a codec's custom mapper.
type Metadata struct {
	RowID  int
	Column string
	Type   Type
}
