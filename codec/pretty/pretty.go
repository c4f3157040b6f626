// Package prettycodec renders a result set with olekukonko/tablewriter:
// each column sized to its own content, headers kept as given, no wrapping.
package prettycodec

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/go-data-exporter/tabular/resultset"
	"github.com/go-data-exporter/tabular/row"
)

type prettyCodec struct {
	writeHeader bool
	rowLine     bool
	nullValue   string
}

type Option func(*prettyCodec)

func New(opts ...Option) *prettyCodec {
	c := &prettyCodec{
		writeHeader: true,
		nullValue:   "",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithHeader(writeHeader bool) Option {
	return func(c *prettyCodec) {
		c.writeHeader = writeHeader
	}
}

// WithRowLine draws a line between data rows.
func WithRowLine(rowLine bool) Option {
	return func(c *prettyCodec) {
		c.rowLine = rowLine
	}
}

// WithCustomNULL sets the text printed for NULL cells. Default empty.
func WithCustomNULL(nullValue string) Option {
	return func(c *prettyCodec) {
		c.nullValue = nullValue
	}
}

func (c *prettyCodec) Write(rs resultset.ResultSet, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetRowLine(c.rowLine)
	if c.writeHeader {
		table.SetHeader(rs.ColumnNames())
	}

	it := row.Iterate(rs)
	for it.Next() {
		values := it.Row().Values()
		cells := make([]string, len(values))
		for i, v := range values {
			if v.IsNull() {
				cells[i] = c.nullValue
			} else {
				cells[i] = v.String()
			}
		}
		table.Append(cells)
	}
	if err := it.Err(); err != nil {
		return err
	}
	table.Render()
	return nil
}
