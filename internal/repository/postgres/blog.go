package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/akashmongoosetech/shashank-backend/internal/model"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
)

const blogColumns = `id, title, slug, excerpt, content, image, author, category, read_time,
	tags, sections, status, published_at, seo, created_at, updated_at`

// applyPublishState keeps publishedAt in lockstep with the publish status:
// set on the transition to published, cleared on the transition to draft.
func applyPublishState(blog *model.Blog) {
	switch blog.Status {
	case model.BlogStatusPublished:
		if blog.PublishedAt == nil {
			now := time.Now()
			blog.PublishedAt = &now
		}
	case model.BlogStatusDraft:
		blog.PublishedAt = nil
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `
		INSERT INTO blogs (` + blogColumns + `)
		VALUES (
			:id, :title, :slug, :excerpt, :content, :image, :author, :category, :read_time,
			:tags, :sections, :status, :published_at, :seo, :created_at, :updated_at
		)
	`
	blog.ID = uuid.New()
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()
	applyPublishState(blog)

	if _, err := r.db.NamedExecContext(ctx, query, blog); err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("a blog with this slug already exists")
		}
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

func (r *blogRepository) Get(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	var blog model.Blog
	err := r.db.GetContext(ctx, &blog, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("blog")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE slug = $1`

	var blog model.Blog
	err := r.db.GetContext(ctx, &blog, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("blog")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog by slug: %w", err)
	}
	return &blog, nil
}

func (r *blogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM blogs WHERE slug = $1)`, slug)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *blogRepository) List(ctx context.Context, filter *model.BlogFilter) ([]*model.Blog, int, error) {
	q := &listQuery{}
	if filter.Status != "" {
		q.Eq("status", filter.Status)
	}
	if filter.Category != "" {
		q.Eq("category", filter.Category)
	}
	q.Search(filter.Search, "title", "excerpt", "content", "category")

	countQuery, countArgs := q.Count("blogs")
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	query, args := q.Select(blogColumns, "blogs", "published_at DESC NULLS LAST, created_at DESC", filter.PageParams)
	blogs := []*model.Blog{}
	if err := r.db.SelectContext(ctx, &blogs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, total, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *model.Blog) error {
	query := `
		UPDATE blogs SET
			title = :title, slug = :slug, excerpt = :excerpt, content = :content,
			image = :image, author = :author, category = :category, read_time = :read_time,
			tags = :tags, sections = :sections, status = :status, published_at = :published_at,
			seo = :seo, updated_at = :updated_at
		WHERE id = :id
	`
	blog.UpdatedAt = time.Now()
	applyPublishState(blog)

	result, err := r.db.NamedExecContext(ctx, query, blog)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("a blog with this slug already exists")
		}
		return fmt.Errorf("failed to update blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("blog")
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("blog")
	}
	return nil
}
