package blog

import (
	"context"

	"github.com/google/uuid"

	"github.com/akashmongoosetech/shashank-backend/internal/cache"
	"github.com/akashmongoosetech/shashank-backend/internal/model"
	"github.com/akashmongoosetech/shashank-backend/internal/repository"
	apperrors "github.com/akashmongoosetech/shashank-backend/pkg/errors"
	"github.com/akashmongoosetech/shashank-backend/pkg/slug"
)

type Service struct {
	repo  repository.BlogRepository
	cache cache.BlogCache
}

func NewService(repo repository.BlogRepository, cache cache.BlogCache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) Create(ctx context.Context, req *model.CreateBlogRequest) (*model.Blog, error) {
	status := req.Status
	if status == "" {
		status = model.BlogStatusDraft
	}
	if !status.Valid() {
		return nil, apperrors.ValidationMsg("status", "must be draft or published")
	}

	blogSlug := req.Slug
	if blogSlug == "" {
		blogSlug = slug.Make(req.Title)
	}
	if !slug.IsValid(blogSlug) {
		return nil, apperrors.ValidationMsg("slug", "must be lowercase, hyphenated and URL-safe")
	}

	exists, err := s.repo.SlugExists(ctx, blogSlug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("a blog with this slug already exists")
	}

	blog := &model.Blog{
		Title:    req.Title,
		Slug:     blogSlug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Image:    req.Image,
		Author:   req.Author,
		Category: req.Category,
		ReadTime: req.ReadTime,
		Tags:     req.Tags,
		Sections: req.Sections,
		Status:   status,
		SEO:      req.SEO,
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *Service) GetBySlug(ctx context.Context, blogSlug string) (*model.Blog, error) {
	if cached, ok := s.cache.Get(ctx, blogSlug); ok {
		return cached, nil
	}

	blog, err := s.repo.GetBySlug(ctx, blogSlug)
	if err != nil {
		return nil, err
	}
	if blog.Status == model.BlogStatusPublished {
		s.cache.Set(ctx, blog)
	}
	return blog, nil
}

func (s *Service) List(ctx context.Context, filter *model.BlogFilter) ([]*model.Blog, int, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateBlogRequest) (*model.Blog, error) {
	blog, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	previousSlug := blog.Slug

	if req.Slug != nil && *req.Slug != blog.Slug {
		if !slug.IsValid(*req.Slug) {
			return nil, apperrors.ValidationMsg("slug", "must be lowercase, hyphenated and URL-safe")
		}
		exists, err := s.repo.SlugExists(ctx, *req.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.Conflict("a blog with this slug already exists")
		}
		blog.Slug = *req.Slug
	}
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Excerpt != nil {
		blog.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Image != nil {
		blog.Image = *req.Image
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.Category != nil {
		blog.Category = *req.Category
	}
	if req.ReadTime != nil {
		blog.ReadTime = *req.ReadTime
	}
	if req.Tags != nil {
		blog.Tags = req.Tags
	}
	if req.Sections != nil {
		blog.Sections = req.Sections
	}
	if req.SEO != nil {
		blog.SEO = *req.SEO
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.ValidationMsg("status", "must be draft or published")
		}
		blog.Status = *req.Status
	}

	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, previousSlug, blog.Slug)
	return blog, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	blog, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, blog.Slug)
	return nil
}
