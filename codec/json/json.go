package jsoncodec

import (
	"io"
	"reflect"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-data-exporter/tabular/resultset"
	"github.com/go-data-exporter/tabular/row"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Option func(*jsonCodec)

type jsonCodec struct {
	customMapper     map[reflect.Type]func(any, resultset.Metadata) any
	preProcessorFunc func(rowID int, row map[string]any) (map[string]any, bool)
	newlineDelimited bool
	limit            int
}

func New(opts ...Option) *jsonCodec {
	c := &jsonCodec{
		customMapper: make(map[reflect.Type]func(any, resultset.Metadata) any),
		limit:        -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithPreProcessorFunc(fn func(rowID int, row map[string]any) (map[string]any, bool)) Option {
	return func(c *jsonCodec) {
		c.preProcessorFunc = fn
	}
}

// WithNewlineDelimited writes one object per line instead of a JSON array.
func WithNewlineDelimited(isNewlineDelimited bool) Option {
	return func(c *jsonCodec) {
		c.newlineDelimited = isNewlineDelimited
	}
}

func WithCustomType[T any](fn func(v T, metadata resultset.Metadata) any) Option {
	return func(c *jsonCodec) {
		var zero T
		typ := reflect.TypeOf(zero)
		if c.customMapper == nil {
			c.customMapper = make(map[reflect.Type]func(any, resultset.Metadata) any)
		}
		c.customMapper[typ] = func(v any, metadata resultset.Metadata) any {
			return fn(v.(T), metadata)
		}
	}
}

// WithLimit caps the number of written rows. Negative means unlimited.
func WithLimit(limit int) Option {
	return func(c *jsonCodec) {
		c.limit = limit
	}
}

// Write writes the rows of rs as a JSON array, or as one object per line in
// newline-delimited mode. An empty array is written as "[]".
func (c *jsonCodec) Write(rs resultset.ResultSet, writer io.Writer) error {
	w := &errWriter{w: writer}
	written, err := c.writeRows(rs, w)
	if err != nil {
		return err
	}
	if !c.newlineDelimited {
		if written == 0 {
			w.write([]byte("[]\n"))
		} else {
			w.write([]byte("\n]\n"))
		}
	}
	return w.err
}

func (c *jsonCodec) writeRows(rs resultset.ResultSet, w *errWriter) (written int, err error) {
	if c.limit == 0 {
		return 0, nil
	}
	columnNames := rs.ColumnNames()
	it := row.Iterate(rs)
	for w.err == nil && it.Next() {
		rowID := it.Index() + 1
		values := it.Row().Values()
		obj := make(map[string]any, len(values))
		for i, col := range columnNames {
			v := values[i].Any()
			if fn, ok := c.customMapper[reflect.TypeOf(v)]; ok && v != nil {
				v = fn(v, resultset.Metadata{RowID: rowID, Column: col, Type: values[i].Type()})
			}
			obj[col] = v
		}

		writeRow := true
		if c.preProcessorFunc != nil {
			obj, writeRow = c.preProcessorFunc(rowID, obj)
		}
		if !writeRow {
			continue
		}

		data, err := json.Marshal(obj)
		if err != nil {
			return written, err
		}
		if c.newlineDelimited {
			w.write(data)
			w.write([]byte("\n"))
		} else {
			if written == 0 {
				w.write([]byte("[\n"))
			} else {
				w.write([]byte(",\n"))
			}
			w.write(data)
		}
		written++
		if c.limit >= 0 && written >= c.limit {
			return written, nil
		}
	}
	return written, it.Err()
}

// errWriter keeps the first write error and skips every later write.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) write(p []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(p)
}
