package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
)

func TestApplyPublishState(t *testing.T) {
	blog := &model.Blog{Status: model.BlogStatusPublished}
	applyPublishState(blog)
	require.NotNil(t, blog.PublishedAt)
	first := *blog.PublishedAt

	// Re-saving an already published post keeps the original timestamp.
	applyPublishState(blog)
	assert.Equal(t, first, *blog.PublishedAt)

	blog.Status = model.BlogStatusDraft
	applyPublishState(blog)
	assert.Nil(t, blog.PublishedAt)
}

func TestBlogSlugExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM blogs WHERE slug = $1)`)).
		WithArgs("winter-skin-care").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.SlugExists(context.Background(), "winter-skin-care")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogGetBySlug(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "title", "slug", "excerpt", "content", "image", "author", "category",
		"read_time", "tags", "sections", "status", "published_at", "seo",
		"created_at", "updated_at",
	}).AddRow(
		"7b1f8c74-0c0f-4f7a-9a51-2f1d6f1f2a3b", "Winter Skin Care", "winter-skin-care",
		"", "body", "", "", "", "", "{}", "[]", "published", now, "{}", now, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM blogs WHERE slug = $1`)).
		WithArgs("winter-skin-care").
		WillReturnRows(rows)

	blog, err := repo.GetBySlug(context.Background(), "winter-skin-care")
	require.NoError(t, err)
	assert.Equal(t, "Winter Skin Care", blog.Title)
	assert.Equal(t, model.BlogStatusPublished, blog.Status)
	require.NotNil(t, blog.PublishedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
