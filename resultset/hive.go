package resultset

import (
	"context"
	"strings"

	"github.com/beltran/gohive"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// FromHiveCursor drains an executed gohive cursor into an in-memory
// ResultSet. Column names come from the cursor description with any
// "table." prefix removed.
func FromHiveCursor(ctx context.Context, cursor *gohive.Cursor) (ResultSet, error) {
	logger := zerolog.Ctx(ctx)

	var names []string
	var binary []bool
	for _, c := range cursor.Description() {
		if len(c) == 0 {
			continue
		}
		name, hiveType := c[0], ""
		if len(c) > 1 {
			hiveType = strings.TrimSuffix(c[1], "_TYPE")
		}
		if _, colName, ok := strings.Cut(name, "."); ok {
			name = colName
		}
		names = append(names, name)
		binary = append(binary, hiveType == "" || hiveType == "BINARY")
	}

	m := &matrix{columns: names, pos: -1}
	currentRow := make([]any, len(names))
	currentRowPtrs := make([]any, len(names))
	for cursor.HasMore(ctx) {
		for i := range currentRow {
			currentRow[i] = nil
			currentRowPtrs[i] = &currentRow[i]
		}
		cursor.FetchOne(ctx, currentRowPtrs...)
		if cursor.Err != nil {
			return nil, errors.Wrapf(cursor.Err, "fetching row %d", len(m.cells)+1)
		}
		for i, v := range currentRow {
			if b, ok := v.([]byte); ok && b != nil && !binary[i] {
				currentRow[i] = string(b)
			}
		}
		m.appendRow(currentRow)
	}
	if err := cursor.Error(); err != nil {
		return nil, errors.Wrap(err, "iterating hive cursor")
	}

	logger.Debug().
		Int("rows", m.RowCount()).
		Int("columns", m.ColumnCount()).
		Msg("materialized hive result set")
	return m, nil
}
