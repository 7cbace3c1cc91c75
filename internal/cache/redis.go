package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/akashmongoosetech/shashank-backend/config"
	"github.com/akashmongoosetech/shashank-backend/internal/model"
)

// BlogCache caches published articles by slug. Cache failures are never
// surfaced; the store stays authoritative.
type BlogCache interface {
	Get(ctx context.Context, slug string) (*model.Blog, bool)
	Set(ctx context.Context, blog *model.Blog)
	Invalidate(ctx context.Context, slugs ...string)
}

const blogTTL = 5 * time.Minute

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(cfg config.RedisConfig) (BlogCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisCache{client: client, ttl: blogTTL}, nil
}

func blogKey(slug string) string {
	return "blog:slug:" + slug
}

func (c *redisCache) Get(ctx context.Context, slug string) (*model.Blog, bool) {
	raw, err := c.client.Get(ctx, blogKey(slug)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Str("slug", slug).Msg("blog cache read failed")
		}
		return nil, false
	}

	var blog model.Blog
	if err := json.Unmarshal(raw, &blog); err != nil {
		log.Debug().Err(err).Str("slug", slug).Msg("blog cache entry corrupt")
		return nil, false
	}
	return &blog, true
}

func (c *redisCache) Set(ctx context.Context, blog *model.Blog) {
	raw, err := json.Marshal(blog)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, blogKey(blog.Slug), raw, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Str("slug", blog.Slug).Msg("blog cache write failed")
	}
}

func (c *redisCache) Invalidate(ctx context.Context, slugs ...string) {
	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, blogKey(slug))
		}
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Debug().Err(err).Strs("slugs", slugs).Msg("blog cache invalidation failed")
	}
}

type noopCache struct{}

// NewNoop returns a cache that never hits, for deployments without redis.
func NewNoop() BlogCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) (*model.Blog, bool) { return nil, false }
func (noopCache) Set(context.Context, *model.Blog)                {}
func (noopCache) Invalidate(context.Context, ...string)           {}
