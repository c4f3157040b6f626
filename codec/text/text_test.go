package textcodec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-data-exporter/tabular/resultset"
)

func newResultSet(t *testing.T) resultset.ResultSet {
	t.Helper()
	rs, err := resultset.FromData([]string{"ID", "NAME", "SURNAME"}, [][]any{
		{"1", "Daenerys", "Targaryen"},
		{"2", "John", "Snow"},
	})
	require.NoError(t, err)
	return rs
}

func format(t *testing.T, rs resultset.ResultSet, opts ...Option) string {
	t.Helper()
	s, err := Format(rs, opts...)
	require.NoError(t, err)
	return s
}

func TestFormatDefault(t *testing.T) {
	assert.Equal(t, strings.TrimPrefix(`
+-----------+-----------+-----------+
| ID        | NAME      | SURNAME   |
+-----------+-----------+-----------+
| 1         | Daenerys  | Targaryen |
| 2         | John      | Snow      |
+-----------+-----------+-----------+
`, "\n"), format(t, newResultSet(t)))
}

func TestFormatWithoutHeader(t *testing.T) {
	assert.Equal(t, strings.TrimPrefix(`
+-----------+-----------+-----------+
| 1         | Daenerys  | Targaryen |
| 2         | John      | Snow      |
+-----------+-----------+-----------+
`, "\n"), format(t, newResultSet(t), WithHeader(false)))
}

func TestFormatWithoutHeaderWithRowSeparator(t *testing.T) {
	assert.Equal(t, strings.TrimPrefix(`
+-----------+-----------+-----------+
| 1         | Daenerys  | Targaryen |
+-----------+-----------+-----------+
| 2         | John      | Snow      |
+-----------+-----------+-----------+
`, "\n"), format(t, newResultSet(t), WithHeader(false), WithRowSeparator(true)))
}

func TestFormatWithRowSeparator(t *testing.T) {
	assert.Equal(t, strings.TrimPrefix(`
+-----------+-----------+-----------+
| ID        | NAME      | SURNAME   |
+-----------+-----------+-----------+
| 1         | Daenerys  | Targaryen |
+-----------+-----------+-----------+
| 2         | John      | Snow      |
+-----------+-----------+-----------+
`, "\n"), format(t, newResultSet(t), WithRowSeparator(true)))
}

func TestFormatFixedWidthDoesNotTruncate(t *testing.T) {
	rs, err := resultset.FromData([]string{"A"}, [][]any{{"abc"}})
	require.NoError(t, err)
	assert.Equal(t, "+---+\n| A |\n+---+\n| abc |\n+---+\n", format(t, rs, WithColumnWidth(1)))
}

func TestFormatFixedWidth(t *testing.T) {
	rs, err := resultset.FromData([]string{"A", "B"}, [][]any{{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, strings.TrimPrefix(`
+-----+-----+
| A   | B   |
+-----+-----+
| 1   | 2   |
+-----+-----+
`, "\n"), format(t, rs, WithColumnWidth(3)))
}

func TestFormatNull(t *testing.T) {
	rs, err := resultset.FromData([]string{"ID", "V"}, [][]any{{1, nil}})
	require.NoError(t, err)
	assert.Equal(t, strings.TrimPrefix(`
+------+------+
| ID   | V    |
+------+------+
| 1    | null |
+------+------+
`, "\n"), format(t, rs))

	assert.Equal(t, strings.TrimPrefix(`
+----+----+
| ID | V  |
+----+----+
| 1  | -  |
+----+----+
`, "\n"), format(t, rs, WithCustomNULL("-")))
}

func TestFormatNoRows(t *testing.T) {
	rs, err := resultset.FromData([]string{"ID"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "+----+\n| ID |\n+----+\n+----+\n", format(t, rs))
	assert.Equal(t, "+----+\n+----+\n", format(t, rs, WithHeader(false)))
	assert.Equal(t, "+----+\n| ID |\n+----+\n", format(t, rs, WithRowSeparator(true)))
}

func TestFormatNoColumns(t *testing.T) {
	rs, err := resultset.FromData(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "+\n|\n+\n+\n", format(t, rs))
}

func TestFormatCRLF(t *testing.T) {
	rs, err := resultset.FromData([]string{"A"}, [][]any{{"x"}})
	require.NoError(t, err)
	assert.Equal(t, "+---+\r\n| A |\r\n+---+\r\n| x |\r\n+---+\r\n", format(t, rs, WithCRLF(true)))
}

func TestFormatMultibyte(t *testing.T) {
	rs, err := resultset.FromData([]string{"N"}, [][]any{{"été"}})
	require.NoError(t, err)
	assert.Equal(t, "+-----+\n| N   |\n+-----+\n| été |\n+-----+\n", format(t, rs))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteError(t *testing.T) {
	err := New().Write(newResultSet(t), failingWriter{})
	assert.EqualError(t, err, "closed")

	var buf bytes.Buffer
	require.NoError(t, New().Write(newResultSet(t), &buf))
	assert.Equal(t, format(t, newResultSet(t)), buf.String())
}
