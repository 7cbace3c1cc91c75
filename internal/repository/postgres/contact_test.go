package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func contactRows(id uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "email", "subject", "message", "status", "priority",
		"tags", "assigned_to", "notes", "created_at", "updated_at",
	}).AddRow(
		id, "Ravi", "ravi@example.com", "Pigmentation", "A question",
		"new", "medium", "{}", "", "", now, now,
	)
}

func TestContactGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+contactColumns+` FROM contacts WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(contactRows(id))

	contact, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, contact.ID)
	assert.Equal(t, model.ContactStatusNew, contact.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactGet_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+contactColumns+` FROM contacts WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), id)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactList_FilterAndSearchArgs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM contacts WHERE status = $1 AND (name ILIKE $2 OR email ILIKE $2 OR subject ILIKE $2 OR message ILIKE $2)`,
	)).
		WithArgs("new", "%ravi%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC LIMIT $3 OFFSET $4`)).
		WithArgs("new", "%ravi%", 10, 0).
		WillReturnRows(contactRows(id))

	filter := &model.ContactFilter{Status: "new", Search: "ravi"}
	filter.Normalize()
	contacts, total, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, contacts, 1)
	assert.Equal(t, id, contacts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contacts WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contacts WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), id)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery("GROUP BY GROUPING SETS").
		WillReturnRows(sqlmock.NewRows([]string{"status", "priority", "count"}).
			AddRow("new", "", 3).
			AddRow("replied", "", 2).
			AddRow("", "medium", 4).
			AddRow("", "high", 1))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.ByStatus["new"])
	assert.Equal(t, 4, stats.ByPriority["medium"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
