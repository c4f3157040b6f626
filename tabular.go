// Package tabular is a convenience layer over a cursor-positioned result
// set: row iteration, indexed access to typed rows, and text or export
// rendering.
//
//	rs, err := resultset.FromSQL(ctx, rows)
//	v := tabular.New(rs)
//	fmt.Print(v)
//
// A View shares its ResultSet's cursor and is not safe for concurrent use.
package tabular

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/go-data-exporter/tabular/codec"
	textcodec "github.com/go-data-exporter/tabular/codec/text"
	"github.com/go-data-exporter/tabular/resultset"
	"github.com/go-data-exporter/tabular/row"
)

type View struct {
	rs     resultset.ResultSet
	logger zerolog.Logger
}

type Option func(*View)

// WithLogger sets the logger used for debug output. Default zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(v *View) {
		v.logger = logger
	}
}

func New(rs resultset.ResultSet, opts ...Option) *View {
	v := &View{
		rs:     rs,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *View) ResultSet() resultset.ResultSet {
	return v.rs
}

func (v *View) RowCount() int {
	return row.RowCount(v.rs)
}

func (v *View) ColumnCount() int {
	return row.ColumnCount(v.rs)
}

func (v *View) ColumnNames() []string {
	return v.rs.ColumnNames()
}

// RowAt materializes the row at index.
func (v *View) RowAt(index int) (row.Row, error) {
	r, err := row.At(v.rs, index)
	if err != nil {
		v.logger.Debug().Err(err).Int("index", index).Msg("row lookup failed")
	}
	return r, err
}

// Rows returns a fresh iterator positioned before the first row.
func (v *View) Rows() *row.Iterator {
	return row.Iterate(v.rs)
}

func (v *View) ForEach(visit func(row.Row)) error {
	return row.ForEach(v.rs, visit)
}

func (v *View) ForEachIndexed(visit func(int, row.Row)) error {
	return row.ForEachIndexed(v.rs, visit)
}

// Format renders the result set as a fixed-width text table.
func (v *View) Format(opts ...textcodec.Option) (string, error) {
	return textcodec.Format(v.rs, opts...)
}

// String renders the default text table. Errors are rendered in place of
// the table.
func (v *View) String() string {
	s, err := v.Format()
	if err != nil {
		return "error: " + err.Error()
	}
	return s
}

func (v *View) Write(c codec.Codec, writer io.Writer) error {
	v.logger.Debug().
		Int("rows", v.RowCount()).
		Int("columns", v.ColumnCount()).
		Msg("writing result set")
	return c.Write(v.rs, writer)
}

func (v *View) WriteFile(c codec.Codec, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := v.Write(c, f); err != nil {
		return err
	}
	return f.Close()
}
