// Package tostring converts cell values into their string representation,
// detecting NULL or NULL-equivalent values along the way. It is the single
// default conversion shared by rows and codecs.
package tostring

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// NullLiteral is what Display renders for a NULL value.
const NullLiteral = "null"

var jsonStd = jsoniter.ConfigCompatibleWithStandardLibrary

// String is a rendered value plus a flag telling whether it was NULL.
type String struct {
	String string
	IsNULL bool
}

// Display renders v, using NullLiteral for NULL values.
func Display(v any) string {
	s := ToString(v)
	if s.IsNULL {
		return NullLiteral
	}
	return s.String
}

// ToString converts an arbitrary value to a String.
//
// Integers and floats use their shortest decimal form, valid UTF-8 byte
// slices are taken as text and other byte slices are hex encoded. time.Time
// uses RFC3339Nano. Types implementing json.Marshaler or fmt.Stringer are
// rendered through them, anything else through JSON.
//
// nil, the zero time and the JSON forms "null", "[]" and "{}" are NULL.
func ToString(v any) String {
	if v == nil {
		return String{IsNULL: true}
	}
	switch v := v.(type) {
	case string:
		return String{String: v}
	case []byte:
		if v == nil {
			return String{IsNULL: true}
		}
		if isText(v) {
			return String{String: string(v)}
		}
		return String{String: hex.EncodeToString(v)}
	case bool:
		return String{String: strconv.FormatBool(v)}
	case int:
		return String{String: strconv.Itoa(v)}
	case int8, int16, int32, int64:
		return String{String: fmt.Sprintf("%d", v)}
	case uint, uint8, uint16, uint32, uint64:
		return String{String: fmt.Sprintf("%d", v)}
	case float32:
		return String{String: strconv.FormatFloat(float64(v), 'f', -1, 32)}
	case float64:
		return String{String: strconv.FormatFloat(v, 'f', -1, 64)}
	case time.Time:
		if v.IsZero() {
			return String{IsNULL: true}
		}
		return String{String: v.Format(time.RFC3339Nano)}
	case json.Marshaler:
		if data, err := v.MarshalJSON(); err == nil {
			return fromJSON(data)
		}
	}
	if fmtStringer, ok := v.(fmt.Stringer); ok {
		return String{String: fmtStringer.String()}
	}
	if data, err := jsonStd.Marshal(v); err == nil {
		return fromJSON(data)
	}
	return String{String: fmt.Sprintf("%v", v)}
}

func fromJSON(data []byte) String {
	s := strings.Trim(string(data), `"`)
	if s == "[]" || s == "{}" || s == "null" {
		return String{IsNULL: true}
	}
	return String{String: s}
}

func isText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
