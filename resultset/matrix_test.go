package resultset

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDataNormalizesCells(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rs, err := FromData([]string{"a", "b", "c", "d", "e", "f", "g", "h"}, [][]any{
		{int32(3), uint8(4), true, float32(1.5), "s", []byte{1, 2}, nil, now},
	})
	require.NoError(t, err)
	require.True(t, rs.MoveToPosition(0))

	assert.Equal(t, TypeInteger, rs.Type(0))
	assert.Equal(t, int64(3), rs.Integer(0))
	assert.Equal(t, TypeInteger, rs.Type(1))
	assert.Equal(t, int64(4), rs.Integer(1))
	assert.Equal(t, TypeInteger, rs.Type(2))
	assert.Equal(t, int64(1), rs.Integer(2))
	assert.Equal(t, TypeFloat, rs.Type(3))
	assert.Equal(t, 1.5, rs.Float(3))
	assert.Equal(t, TypeString, rs.Type(4))
	assert.Equal(t, "s", rs.String(4))
	assert.Equal(t, TypeBlob, rs.Type(5))
	assert.Equal(t, []byte{1, 2}, rs.Blob(5))
	assert.Equal(t, TypeNull, rs.Type(6))
	assert.Equal(t, TypeString, rs.Type(7))
	assert.Equal(t, "2024-05-01T12:00:00Z", rs.String(7))
}

func TestFromDataInfersColumns(t *testing.T) {
	rs, err := FromData(nil, [][]any{{1, "x"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"column_0", "column_1"}, rs.ColumnNames())
	assert.Equal(t, 2, rs.ColumnCount())
	assert.Equal(t, 1, rs.RowCount())

	rs, err = FromData(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rs.ColumnCount())
	assert.Equal(t, 0, rs.RowCount())
}

func TestFromDataRejectsRaggedRows(t *testing.T) {
	_, err := FromData([]string{"a", "b"}, [][]any{{1, 2}, {3}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestMoveToPosition(t *testing.T) {
	rs, err := FromData([]string{"a"}, [][]any{{1}, {2}})
	require.NoError(t, err)

	assert.False(t, rs.MoveToPosition(-1))
	assert.Equal(t, TypeNull, rs.Type(0))
	assert.True(t, rs.MoveToPosition(1))
	assert.Equal(t, int64(2), rs.Integer(0))
	assert.False(t, rs.MoveToPosition(2))
	assert.Equal(t, TypeNull, rs.Type(0))
	assert.True(t, rs.MoveToPosition(0))
	assert.Equal(t, int64(1), rs.Integer(0))
}

func TestReadersOnWrongType(t *testing.T) {
	rs, err := FromData([]string{"a"}, [][]any{{"text"}})
	require.NoError(t, err)
	require.True(t, rs.MoveToPosition(0))
	assert.Equal(t, int64(0), rs.Integer(0))
	assert.Equal(t, 0.0, rs.Float(0))
	assert.Nil(t, rs.Blob(0))
	assert.Equal(t, TypeNull, rs.Type(5))
}

func TestColumnNamesAreCopied(t *testing.T) {
	columns := []string{"a"}
	rs, err := FromData(columns, [][]any{{1}})
	require.NoError(t, err)
	columns[0] = "changed"
	names := rs.ColumnNames()
	names[0] = "again"
	assert.Equal(t, []string{"a"}, rs.ColumnNames())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "integer", TypeInteger.String())
	assert.Equal(t, "blob", TypeBlob.String())
	assert.Equal(t, "unknown(9)", Type(9).String())
}

func TestFromDataUnsignedOverflow(t *testing.T) {
	rs, err := FromData([]string{"big", "max", "small"}, [][]any{
		{uint64(math.MaxUint64), uint64(math.MaxInt64), uint(7)},
	})
	require.NoError(t, err)
	require.True(t, rs.MoveToPosition(0))

	assert.Equal(t, TypeString, rs.Type(0))
	assert.Equal(t, "18446744073709551615", rs.String(0))
	assert.Equal(t, TypeInteger, rs.Type(1))
	assert.Equal(t, int64(math.MaxInt64), rs.Integer(1))
	assert.Equal(t, TypeInteger, rs.Type(2))
	assert.Equal(t, int64(7), rs.Integer(2))
}
