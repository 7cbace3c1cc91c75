package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
)

// countByStatusAndPriority aggregates counts for both dimensions in a single
// round trip using grouping sets.
func countByStatusAndPriority(ctx context.Context, db *sqlx.DB, table string) (*model.Stats, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(status, '') AS status, COALESCE(priority, '') AS priority, COUNT(*) AS count
		FROM %s
		GROUP BY GROUPING SETS ((status), (priority))
	`, table)

	rows := []struct {
		Status   string `db:"status"`
		Priority string `db:"priority"`
		Count    int    `db:"count"`
	}{}
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate %s stats: %w", table, err)
	}

	stats := &model.Stats{
		ByStatus:   map[string]int{},
		ByPriority: map[string]int{},
	}
	for _, row := range rows {
		if row.Status != "" {
			stats.ByStatus[row.Status] = row.Count
			stats.Total += row.Count
		} else if row.Priority != "" {
			stats.ByPriority[row.Priority] = row.Count
		}
	}
	return stats, nil
}
