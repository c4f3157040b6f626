package htmlcodec

import (
	"fmt"
	"html"
	"io"
	"reflect"
	"strings"

	"github.com/go-data-exporter/tabular/resultset"
	"github.com/go-data-exporter/tabular/row"
	"github.com/go-data-exporter/tabular/tostring"
)

type htmlCodec struct {
	customMapper      map[reflect.Type]func(any, resultset.Metadata) tostring.String
	preProcessorFunc  func(rowID int, row []string) ([]string, bool)
	toStringFunc      func(v any) tostring.String
	writeHeader       bool
	writeHeaderNoData bool
	nullValue         string
}

type Option func(*htmlCodec)

func New(opts ...Option) *htmlCodec {
	cw := &htmlCodec{
		customMapper:      make(map[reflect.Type]func(any, resultset.Metadata) tostring.String),
		writeHeader:       true,
		writeHeaderNoData: true,
		toStringFunc:      tostring.ToString,
		nullValue:         `<span style="color:#aaaaaa;">[NULL]</span>`,
	}
	for _, opt := range opts {
		opt(cw)
	}
	return cw
}

func WithCustomType[T any](fn func(v T, metadata resultset.Metadata) tostring.String) Option {
	return func(cw *htmlCodec) {
		var zero T
		typ := reflect.TypeOf(zero)
		if cw.customMapper == nil {
			cw.customMapper = make(map[reflect.Type]func(any, resultset.Metadata) tostring.String)
		}
		cw.customMapper[typ] = func(v any, metadata resultset.Metadata) tostring.String {
			return fn(v.(T), metadata)
		}
	}
}

// WithPreProcessorFunc receives escaped cell markup and may rewrite or drop
// the row.
func WithPreProcessorFunc(fn func(rowID int, row []string) ([]string, bool)) Option {
	return func(cw *htmlCodec) {
		cw.preProcessorFunc = fn
	}
}

func WithCustomToStringFunc(fn func(v any) tostring.String) Option {
	return func(cw *htmlCodec) {
		cw.toStringFunc = fn
	}
}

func WithHeader(writeHeader bool) Option {
	return func(cw *htmlCodec) {
		cw.writeHeader = writeHeader
	}
}

// WithCustomNULL sets the raw markup written for NULL cells.
func WithCustomNULL(nullValue string) Option {
	return func(cw *htmlCodec) {
		cw.nullValue = nullValue
	}
}

// WithWriteHeaderWhenNoData controls whether an empty result set still
// produces a document with the header.
func WithWriteHeaderWhenNoData(writeHeaderNoData bool) Option {
	return func(cw *htmlCodec) {
		cw.writeHeaderNoData = writeHeaderNoData
	}
}

var htmlPrefix = strings.Join(strings.Fields(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>Go Export</title><style>
	body, html {
	  margin: 0;
	  padding: 0;
	}
	th {
	  border:1px solid #dedede;
	  padding: 15px;
	  border-top: 0px solid red;
	  border-left: 0px solid red;
	}
	td {
	  border: 1px solid #dedede;
	  border-top: 0px solid red;
	  border-left: 0px solid red;
	  padding: 10px 10px 10px 10px;
	  max-width:700px;
	  overflow-x: auto;
	  white-space: nowrap;
	}
	p.typ {
	  margin-top: 5px;
	  color: #333;
	}
	</style> </head><body><table style="width:100%;border-spacing:0px;">`), " ")

// Write writes rs as an HTML document. Each header cell shows the column name
// and the type of the column's first non-NULL cell, which takes an extra pass
// over the result set.
func (c *htmlCodec) Write(rs resultset.ResultSet, writer io.Writer) error {
	columnNames := rs.ColumnNames()
	var columnTypes []resultset.Type
	if c.writeHeader {
		var err error
		if columnTypes, err = detectTypes(rs); err != nil {
			return err
		}
	}
	w := &errWriter{w: writer}
	opened := false
	open := func() {
		opened = true
		w.write([]byte(htmlPrefix))
		if !c.writeHeader {
			return
		}
		w.write([]byte(`<thead style="position:sticky;top:0;z-index:99;background:#f9f9f9;">`))
		for i, name := range columnNames {
			w.write(fmt.Appendf(nil, "<th><p>%s</p><p class=typ>%s</p></th>", html.EscapeString(name), columnTypes[i]))
		}
		w.write([]byte(`</thead>`))
	}
	if c.writeHeaderNoData && len(columnNames) != 0 {
		open()
	}

	written := 0
	it := row.Iterate(rs)
	for w.err == nil && it.Next() {
		rowID := it.Index() + 1
		values := it.Row().Values()
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = c.toString(v, resultset.Metadata{RowID: rowID, Column: columnNames[i], Type: v.Type()})
		}
		writeRow := true
		if c.preProcessorFunc != nil {
			cells, writeRow = c.preProcessorFunc(rowID, cells)
		}
		if !writeRow {
			continue
		}
		if !opened {
			open()
		}
		if written == 0 {
			w.write([]byte(`<tbody>`))
		}
		w.write([]byte(`<tr>`))
		for _, cell := range cells {
			w.write(fmt.Appendf(nil, "<td>%s</td>", cell))
		}
		w.write([]byte(`</tr>`))
		written++
	}
	if err := it.Err(); err != nil {
		return err
	}
	if written != 0 {
		w.write([]byte(`</tbody>`))
	}
	if opened {
		w.write([]byte(`</table></body></html>`))
	}
	return w.err
}

// detectTypes returns, per column, the type of its first non-NULL cell.
// Columns without one report TypeNull.
func detectTypes(rs resultset.ResultSet) ([]resultset.Type, error) {
	types := make([]resultset.Type, rs.ColumnCount())
	pending := len(types)
	it := row.Iterate(rs)
	for pending > 0 && it.Next() {
		for i, v := range it.Row().Values() {
			if types[i] == resultset.TypeNull && !v.IsNull() {
				types[i] = v.Type()
				pending--
			}
		}
	}
	return types, it.Err()
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

func (c *htmlCodec) toString(v row.Value, metadata resultset.Metadata) string {
	if v.IsNull() {
		return c.nullValue
	}
	s := c.toStringFunc(v.Any())
	if fn, ok := c.customMapper[reflect.TypeOf(v.Any())]; ok {
		s = fn(v.Any(), metadata)
	}
	if s.IsNULL {
		return c.nullValue
	}
	return html.EscapeString(s.String)
}
