package prettycodec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-data-exporter/tabular/resultset"
)

func TestWrite(t *testing.T) {
	rs, err := resultset.FromData([]string{"ID", "NAME"}, [][]any{
		{"1", "Daenerys"},
		{"2", nil},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(WithCustomNULL("-")).Write(rs, &buf))
	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Daenerys")
	assert.Contains(t, out, "-")
	assert.Equal(t, 6, strings.Count(out, "\n"))

	buf.Reset()
	require.NoError(t, New(WithHeader(false), WithRowLine(true)).Write(rs, &buf))
	out = buf.String()
	assert.NotContains(t, out, "NAME")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}
