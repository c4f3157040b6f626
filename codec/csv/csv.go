package csvcodec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/go-data-exporter/tabular/resultset"
	"github.com/go-data-exporter/tabular/row"
	"github.com/go-data-exporter/tabular/tostring"
)

type csvCodec struct {
	customMapper     map[reflect.Type]func(any, resultset.Metadata) string
	preProcessorFunc func(rowID int, row []string) ([]string, bool)
	delimiter        rune
	useCRLF          bool
	writeHeader      bool
	customHeader     []string
	nullValue        string
}

type Option func(*csvCodec)

func New(opts ...Option) *csvCodec {
	cw := &csvCodec{
		customMapper: make(map[reflect.Type]func(any, resultset.Metadata) string),
		delimiter:    ',',
		useCRLF:      false,
		writeHeader:  true,
	}
	for _, opt := range opts {
		opt(cw)
	}
	return cw
}

// WithCustomType converts every cell holding a T (int64, float64, string or
// []byte) with fn.
func WithCustomType[T any](fn func(v T, metadata resultset.Metadata) string) Option {
	return func(cw *csvCodec) {
		var zero T
		typ := reflect.TypeOf(zero)
		if cw.customMapper == nil {
			cw.customMapper = make(map[reflect.Type]func(any, resultset.Metadata) string)
		}
		cw.customMapper[typ] = func(v any, metadata resultset.Metadata) string {
			return fn(v.(T), metadata)
		}
	}
}

func (cs *csvCodec) Write(rs resultset.ResultSet, writer io.Writer) error {
	columnNames := rs.ColumnNames()
	header := columnNames
	if cs.customHeader != nil {
		if len(cs.customHeader) != len(columnNames) {
			return errors.New("invalid header length")
		}
		header = cs.customHeader
	}
	csvWriter := csv.NewWriter(writer)
	if cs.delimiter != 0 {
		csvWriter.Comma = cs.delimiter
	}
	csvWriter.UseCRLF = cs.useCRLF

	if cs.writeHeader {
		if err := csvWriter.Write(header); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	it := row.Iterate(rs)
	for it.Next() {
		values := it.Row().Values()
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = cs.toString(v, resultset.Metadata{
				RowID:  it.Index() + 1,
				Column: columnNames[i],
				Type:   v.Type(),
			})
		}
		writeRow := true
		if cs.preProcessorFunc != nil {
			record, writeRow = cs.preProcessorFunc(it.Index()+1, record)
		}
		if writeRow {
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write row %d: %w", it.Index()+1, err)
			}
		}
	}
	if err := it.Err(); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func (cs *csvCodec) toString(v row.Value, metadata resultset.Metadata) string {
	if v.IsNull() {
		return cs.nullValue
	}
	if fn, ok := cs.customMapper[reflect.TypeOf(v.Any())]; ok {
		return fn(v.Any(), metadata)
	}
	s := tostring.ToString(v.Any())
	if s.IsNULL {
		return cs.nullValue
	}
	return s.String
}

// WithPreProcessorFunc lets fn rewrite each record or drop it by returning false.
func WithPreProcessorFunc(fn func(rowID int, row []string) ([]string, bool)) Option {
	return func(cw *csvCodec) {
		cw.preProcessorFunc = fn
	}
}

func WithCustomDelimiter(delimiter rune) Option {
	return func(cw *csvCodec) {
		cw.delimiter = delimiter
	}
}

func WithCRLF(useCRLF bool) Option {
	return func(cw *csvCodec) {
		cw.useCRLF = useCRLF
	}
}

func WithHeader(writeHeader bool) Option {
	return func(cw *csvCodec) {
		cw.writeHeader = writeHeader
	}
}

func WithCustomHeader(customHeader []string) Option {
	return func(cw *csvCodec) {
		cw.customHeader = customHeader
	}
}

func WithCustomNULL(nullValue string) Option {
	return func(cw *csvCodec) {
		cw.nullValue = nullValue
	}
}
