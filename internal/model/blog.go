package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

func (s BlogStatus) Valid() bool {
	return s == BlogStatusDraft || s == BlogStatusPublished
}

// BlogSection is one ordered sub-section of an article.
type BlogSection struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Image   string `json:"image,omitempty"`
}

// BlogSections is stored as a JSONB column.
type BlogSections []BlogSection

func (s BlogSections) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *BlogSections) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("unsupported type %T for BlogSections", src)
}

// BlogSEO holds search-engine metadata, stored as a JSONB column.
type BlogSEO struct {
	MetaDescription string            `json:"metaDescription,omitempty"`
	Keywords        []string          `json:"keywords,omitempty"`
	MetaTags        map[string]string `json:"metaTags,omitempty"`
}

func (s BlogSEO) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *BlogSEO) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = BlogSEO{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("unsupported type %T for BlogSEO", src)
}

type Blog struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Slug        string         `db:"slug" json:"slug"`
	Excerpt     string         `db:"excerpt" json:"excerpt,omitempty"`
	Content     string         `db:"content" json:"content"`
	Image       string         `db:"image" json:"image,omitempty"`
	Author      string         `db:"author" json:"author,omitempty"`
	Category    string         `db:"category" json:"category,omitempty"`
	ReadTime    string         `db:"read_time" json:"readTime,omitempty"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	Sections    BlogSections   `db:"sections" json:"sections"`
	Status      BlogStatus     `db:"status" json:"status"`
	PublishedAt *time.Time     `db:"published_at" json:"publishedAt,omitempty"`
	SEO         BlogSEO        `db:"seo" json:"seo"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}

type CreateBlogRequest struct {
	Title    string        `json:"title" binding:"required,min=3,max=200"`
	Slug     string        `json:"slug" binding:"max=200"`
	Excerpt  string        `json:"excerpt" binding:"max=500"`
	Content  string        `json:"content" binding:"required"`
	Image    string        `json:"image" binding:"max=500"`
	Author   string        `json:"author" binding:"max=100"`
	Category string        `json:"category" binding:"max=100"`
	ReadTime string        `json:"readTime" binding:"max=50"`
	Tags     []string      `json:"tags"`
	Sections []BlogSection `json:"sections"`
	Status   BlogStatus    `json:"status"`
	SEO      BlogSEO       `json:"seo"`
}

type UpdateBlogRequest struct {
	Title    *string       `json:"title"`
	Slug     *string       `json:"slug"`
	Excerpt  *string       `json:"excerpt"`
	Content  *string       `json:"content"`
	Image    *string       `json:"image"`
	Author   *string       `json:"author"`
	Category *string       `json:"category"`
	ReadTime *string       `json:"readTime"`
	Tags     []string      `json:"tags"`
	Sections []BlogSection `json:"sections"`
	Status   *BlogStatus   `json:"status"`
	SEO      *BlogSEO      `json:"seo"`
}

type BlogFilter struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Search   string `form:"search"`
	PageParams
}
