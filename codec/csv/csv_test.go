package csvcodec

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/go-data-exporter/tabular/resultset"
)

func fromData(t *testing.T, columns []string, data [][]any) resultset.ResultSet {
	t.Helper()
	rs, err := resultset.FromData(columns, data)
	if err != nil {
		t.Fatalf("FromData failed: %v", err)
	}
	return rs
}

func write(t *testing.T, rs resultset.ResultSet, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	if err := New(opts...).Write(rs, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	return buf.String()
}

func TestWrite(t *testing.T) {
	rs := fromData(t, []string{"ID", "NAME", "SCORE"}, [][]any{
		{1, "Daenerys", 9.5},
		{2, "Snow, John", nil},
	})
	want := "ID,NAME,SCORE\n1,Daenerys,9.5\n2,\"Snow, John\",\n"
	if got := write(t, rs); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOptions(t *testing.T) {
	rs := fromData(t, []string{"ID", "NAME"}, [][]any{
		{1, nil},
		{2, "John"},
	})
	got := write(t, rs,
		WithCustomDelimiter(';'),
		WithCRLF(true),
		WithCustomHeader([]string{"id", "name"}),
		WithCustomNULL("NULL"),
	)
	want := "id;name\r\n1;NULL\r\n2;John\r\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = write(t, rs, WithHeader(false))
	if want := "1,\n2,John\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInvalidCustomHeader(t *testing.T) {
	rs := fromData(t, []string{"ID"}, nil)
	var buf bytes.Buffer
	if err := New(WithCustomHeader([]string{"a", "b"})).Write(rs, &buf); err == nil {
		t.Error("expected error for header length mismatch")
	}
}

func TestCustomTypeAndPreProcessor(t *testing.T) {
	rs := fromData(t, []string{"N"}, [][]any{{1}, {2}, {3}})
	got := write(t, rs,
		WithHeader(false),
		WithCustomType(func(v int64, metadata resultset.Metadata) string {
			return metadata.Column + "=" + strconv.FormatInt(v*10, 10)
		}),
		WithPreProcessorFunc(func(rowID int, row []string) ([]string, bool) {
			return row, rowID != 2
		}),
	)
	if want := "N=10\nN=30\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
