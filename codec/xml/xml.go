// Package xmlcodec exports a result set as XML, one <row> element per row
// and one child element per non-NULL cell, named after its column.
package xmlcodec

import (
	"encoding/xml"
	"fmt"
	"io"
	"reflect"

	"github.com/go-data-exporter/tabular/resultset"
	"github.com/go-data-exporter/tabular/row"
	"github.com/go-data-exporter/tabular/tostring"
)

type xmlCodec struct {
	customMapper     map[reflect.Type]func(any, resultset.Metadata) tostring.String
	preProcessorFunc func(rowID int, row []string) ([]string, bool)
	limit            int
}

// Option defines a functional configuration option for xmlCodec.
type Option func(*xmlCodec)

// New creates a new XML codec with the provided configuration options.
func New(opts ...Option) *xmlCodec {
	c := &xmlCodec{
		customMapper: make(map[reflect.Type]func(any, resultset.Metadata) tostring.String),
		limit:        -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCustomType registers a string conversion for cells holding a T.
func WithCustomType[T any](fn func(v T, metadata resultset.Metadata) tostring.String) Option {
	return func(c *xmlCodec) {
		var zero T
		typ := reflect.TypeOf(zero)
		if c.customMapper == nil {
			c.customMapper = make(map[reflect.Type]func(any, resultset.Metadata) tostring.String)
		}
		c.customMapper[typ] = func(v any, metadata resultset.Metadata) tostring.String {
			return fn(v.(T), metadata)
		}
	}
}

// WithPreProcessorFunc sets a function to rewrite or filter each row before writing.
func WithPreProcessorFunc(fn func(rowID int, row []string) ([]string, bool)) Option {
	return func(c *xmlCodec) {
		c.preProcessorFunc = fn
	}
}

// WithLimit sets a limit on the number of rows to write. Negative means unlimited.
func WithLimit(limit int) Option {
	return func(c *xmlCodec) {
		c.limit = limit
	}
}

// Write writes the rows of rs as XML. Nothing is written for an empty
// result set.
func (c *xmlCodec) Write(rs resultset.ResultSet, writer io.Writer) error {
	if c.limit == 0 {
		return nil
	}
	w := &errWriter{w: writer}
	written, err := c.writeRows(rs, w)
	if err != nil {
		return err
	}
	if written > 0 {
		w.write([]byte("</data>\n"))
	}
	return w.err
}

func (c *xmlCodec) writeRows(rs resultset.ResultSet, w *errWriter) (written int, err error) {
	columnNames := rs.ColumnNames()
	it := row.Iterate(rs)
	for w.err == nil && it.Next() {
		rowID := it.Index() + 1
		values := it.Row().Values()
		cells := make([]string, len(values))
		null := make([]bool, len(values))
		for i, v := range values {
			s := c.toString(v, resultset.Metadata{RowID: rowID, Column: columnNames[i], Type: v.Type()})
			cells[i], null[i] = s.String, s.IsNULL
		}

		writeRow := true
		if c.preProcessorFunc != nil {
			cells, writeRow = c.preProcessorFunc(rowID, cells)
		}
		if !writeRow {
			continue
		}
		if len(cells) > len(columnNames) {
			return written, fmt.Errorf("row %d: pre-processor returned %d cells for %d columns", rowID, len(cells), len(columnNames))
		}
		if written == 0 {
			w.write([]byte(`<?xml version="1.0" encoding="UTF-8"?>`))
			w.write([]byte("\n<data>\n"))
		}
		w.write([]byte("<row>"))
		for i := range cells {
			if null[i] {
				continue
			}
			w.write([]byte("<" + columnNames[i] + ">"))
			w.escape([]byte(cells[i]))
			w.write([]byte("</" + columnNames[i] + ">"))
		}
		w.write([]byte("</row>\n"))
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

func (w *errWriter) escape(p []byte) {
	if w.err != nil {
		return
	}
	w.err = xml.EscapeText(w.w, p)
}

// toString converts a value using a custom mapper if one is registered for
// its Go type, or the default conversion otherwise.
func (c *xmlCodec) toString(v row.Value, metadata resultset.Metadata) tostring.String {
	if v.IsNull() {
		return tostring.String{IsNULL: true}
	}
	if fn, ok := c.customMapper[reflect.TypeOf(v.Any())]; ok {
		return fn(v.Any(), metadata)
	}
	return tostring.ToString(v.Any())
}
