package resultset

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// FromSQL drains a *sql.Rows into an in-memory ResultSet. database/sql rows
// are forward-only, so positional access needs the whole result up front.
// The caller still owns rows and must close it.
//
// Drivers that hand back text as []byte (MySQL, for instance) have those
// cells decoded as String unless the column's database type is binary.
func FromSQL(ctx context.Context, rows *sql.Rows) (ResultSet, error) {
	logger := zerolog.Ctx(ctx)

	cols, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.Wrap(err, "reading column types")
	}
	names := make([]string, len(cols))
	binary := make([]bool, len(cols))
	for i, c := range cols {
		names[i] = c.Name()
		binary[i] = isBinaryType(c.DatabaseTypeName())
	}

	m := &matrix{columns: names, pos: -1}
	currentRow := make([]any, len(cols))
	currentRowPtrs := make([]any, len(cols))
	for rows.Next() {
		for i := range currentRow {
			currentRow[i] = nil
			currentRowPtrs[i] = &currentRow[i]
		}
		if err := rows.Scan(currentRowPtrs...); err != nil {
			return nil, errors.Wrapf(err, "scanning row %d", len(m.cells)+1)
		}
		for i, v := range currentRow {
			if b, ok := v.([]byte); ok && b != nil && !binary[i] {
				currentRow[i] = string(b)
			}
		}
		m.appendRow(currentRow)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating rows")
	}

	logger.Debug().
		Int("rows", m.RowCount()).
		Int("columns", m.ColumnCount()).
		Msg("materialized sql result set")
	return m, nil
}

func isBinaryType(name string) bool {
	name = strings.ToUpper(name)
	return name == "" ||
		strings.Contains(name, "BLOB") ||
		strings.Contains(name, "BINARY") ||
		strings.Contains(name, "BYTEA")
}
