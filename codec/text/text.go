// Package textcodec renders a result set as a fixed-width text table:
//
//	+-----------+-----------+
//	| ID        | NAME      |
//	+-----------+-----------+
//	| 1         | Daenerys  |
//	+-----------+-----------+
//
// Every column shares one width, either fixed by WithColumnWidth or the
// longest column name or cell in the whole result set.
package textcodec

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-data-exporter/tabular/resultset"
	"github.com/go-data-exporter/tabular/row"
)

type textCodec struct {
	writeHeader  bool
	rowSeparator bool
	columnWidth  int
	nullValue    string
	newline      string
}

type Option func(*textCodec)

func New(opts ...Option) *textCodec {
	c := &textCodec{
		writeHeader: true,
		columnWidth: -1,
		nullValue:   "null",
		newline:     "\n",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHeader controls the column name line and its separator. Default true.
func WithHeader(writeHeader bool) Option {
	return func(c *textCodec) {
		c.writeHeader = writeHeader
	}
}

// WithRowSeparator draws a border line after every data row instead of only
// after the last one.
func WithRowSeparator(rowSeparator bool) Option {
	return func(c *textCodec) {
		c.rowSeparator = rowSeparator
	}
}

// WithColumnWidth fixes the width of every column. Values that do not fit
// are not truncated. Zero or negative means computed from the data.
func WithColumnWidth(width int) Option {
	return func(c *textCodec) {
		c.columnWidth = width
	}
}

// WithCustomNULL sets the text printed for NULL cells. Default "null".
func WithCustomNULL(nullValue string) Option {
	return func(c *textCodec) {
		c.nullValue = nullValue
	}
}

// WithCRLF terminates lines with "\r\n".
func WithCRLF(useCRLF bool) Option {
	return func(c *textCodec) {
		if useCRLF {
			c.newline = "\r\n"
		} else {
			c.newline = "\n"
		}
	}
}

// Format renders rs into a string.
func Format(rs resultset.ResultSet, opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := New(opts...).Write(rs, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders the whole table into writer. With a computed width the
// result set is traversed twice; output is buffered and written once.
func (c *textCodec) Write(rs resultset.ResultSet, writer io.Writer) error {
	columns := rs.ColumnNames()
	width := c.columnWidth
	if width <= 0 {
		var err error
		if width, err = c.measure(rs, columns); err != nil {
			return err
		}
	}
	separator := strings.Repeat("+"+strings.Repeat("-", width+2), len(columns)) + "+" + c.newline

	var buf bytes.Buffer
	buf.WriteString(separator)
	if c.writeHeader {
		c.writeLine(&buf, columns, width)
		buf.WriteString(separator)
	}
	it := row.Iterate(rs)
	for it.Next() {
		c.writeLine(&buf, c.cells(it.Row()), width)
		if c.rowSeparator {
			buf.WriteString(separator)
		}
	}
	if err := it.Err(); err != nil {
		return err
	}
	if !c.rowSeparator {
		buf.WriteString(separator)
	}
	_, err := writer.Write(buf.Bytes())
	return err
}

func (c *textCodec) measure(rs resultset.ResultSet, columns []string) (int, error) {
	width := 0
	for _, name := range columns {
		width = max(width, utf8.RuneCountInString(name))
	}
	it := row.Iterate(rs)
	for it.Next() {
		for _, s := range c.cells(it.Row()) {
			width = max(width, utf8.RuneCountInString(s))
		}
	}
	return width, it.Err()
}

func (c *textCodec) cells(r row.Row) []string {
	values := r.Values()
	cells := make([]string, len(values))
	for i, v := range values {
		if v.IsNull() {
			cells[i] = c.nullValue
		} else {
			cells[i] = v.String()
		}
	}
	return cells
}

func (c *textCodec) writeLine(buf *bytes.Buffer, cells []string, width int) {
	for _, s := range cells {
		fmt.Fprintf(buf, "| %-*s ", width, s)
	}
	buf.WriteString("|")
	buf.WriteString(c.newline)
}
