package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
)

func TestListQuery_NoConditions(t *testing.T) {
	q := &listQuery{}

	countQuery, countArgs := q.Count("contacts")
	assert.Equal(t, "SELECT COUNT(*) FROM contacts", countQuery)
	assert.Empty(t, countArgs)

	query, args := q.Select("id", "contacts", "created_at DESC", model.PageParams{Page: 1, Limit: 10})
	assert.Equal(t, "SELECT id FROM contacts ORDER BY created_at DESC LIMIT $1 OFFSET $2", query)
	assert.Equal(t, []interface{}{10, 0}, args)
}

func TestListQuery_ConditionsNumberSequentially(t *testing.T) {
	q := &listQuery{}
	q.Eq("status", "pending")
	q.Gte("preferred_date", "2026-09-01")
	q.Lte("preferred_date", "2026-09-30")
	q.Search("asha", "name", "email")

	query, args := q.Select("id", "appointments", "preferred_date ASC", model.PageParams{Page: 2, Limit: 20})
	assert.Equal(t,
		"SELECT id FROM appointments"+
			" WHERE status = $1 AND preferred_date >= $2 AND preferred_date <= $3"+
			" AND (name ILIKE $4 OR email ILIKE $4)"+
			" ORDER BY preferred_date ASC LIMIT $5 OFFSET $6",
		query)
	assert.Equal(t, []interface{}{"pending", "2026-09-01", "2026-09-30", "%asha%", 20, 20}, args)
}

func TestListQuery_SearchSkipsEmptyTerm(t *testing.T) {
	q := &listQuery{}
	q.Search("", "name", "email")

	countQuery, countArgs := q.Count("contacts")
	assert.Equal(t, "SELECT COUNT(*) FROM contacts", countQuery)
	assert.Empty(t, countArgs)
}

func TestListQuery_CountUnaffectedBySelect(t *testing.T) {
	q := &listQuery{}
	q.Eq("status", "new")

	_, _ = q.Select("id", "contacts", "created_at DESC", model.PageParams{Page: 1, Limit: 10})
	countQuery, countArgs := q.Count("contacts")
	assert.Equal(t, "SELECT COUNT(*) FROM contacts WHERE status = $1", countQuery)
	assert.Equal(t, []interface{}{"new"}, countArgs)
}
