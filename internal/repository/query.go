package repository

import (
	"context"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/deppfellow/phonecustody/internal/database"
)

// countRows runs a single-value count query.
func countRows(ctx context.Context, q database.Querier, stmt string, args ...any) (int64, error) {
	var n int64
	if err := q.QueryRow(ctx, stmt, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return n, nil
}

func execAffected(ctx context.Context, q database.Querier, ub *sqlbuilder.UpdateBuilder, op string) (int64, error) {
	stmt, args := ub.Build()

	tag, err := q.Exec(ctx, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return tag.RowsAffected(), nil
}
