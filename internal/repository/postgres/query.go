package postgres

import (
	"fmt"
	"strings"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
)

// listQuery accumulates filter conditions with positional arguments. One
// builder backs the list endpoints of every entity instead of four
// hand-rolled variants.
type listQuery struct {
	conds []string
	args  []interface{}
}

func (q *listQuery) next() int {
	return len(q.args) + 1
}

func (q *listQuery) Eq(column string, value interface{}) {
	q.conds = append(q.conds, fmt.Sprintf("%s = $%d", column, q.next()))
	q.args = append(q.args, value)
}

func (q *listQuery) Gte(column string, value interface{}) {
	q.conds = append(q.conds, fmt.Sprintf("%s >= $%d", column, q.next()))
	q.args = append(q.args, value)
}

func (q *listQuery) Lte(column string, value interface{}) {
	q.conds = append(q.conds, fmt.Sprintf("%s <= $%d", column, q.next()))
	q.args = append(q.args, value)
}

// Search adds a case-insensitive free-text condition across the given
// columns, all matched against the same term.
func (q *listQuery) Search(term string, columns ...string) {
	if term == "" {
		return
	}
	n := q.next()
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, n))
	}
	q.conds = append(q.conds, "("+strings.Join(parts, " OR ")+")")
	q.args = append(q.args, "%"+term+"%")
}

func (q *listQuery) where() string {
	if len(q.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conds, " AND ")
}

// Count builds the total-items query. Call before Select: the pagination
// arguments Select appends are not part of the count.
func (q *listQuery) Count(table string) (string, []interface{}) {
	return "SELECT COUNT(*) FROM " + table + q.where(), q.args[:len(q.args):len(q.args)]
}

// Select builds the page query with ordering and LIMIT/OFFSET.
func (q *listQuery) Select(columns, table, orderBy string, page model.PageParams) (string, []interface{}) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		columns, table, q.where(), orderBy, q.next(), q.next()+1,
	)
	args := append(q.args, page.Limit, page.Offset())
	return query, args
}
