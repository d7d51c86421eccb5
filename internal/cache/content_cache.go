// Package cache provides the Redis-backed store for generated lesson content
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/oyanquantum/oyan/internal/config"
	"github.com/oyanquantum/oyan/internal/models"
)

// keyPrefix is versioned so a content format change invalidates old entries
const keyPrefix = "lesson_content_v1"

// ContentCache stores generated lesson content keyed by language and lesson id.
// Get returns (zero, false, nil) on a miss.
type ContentCache interface {
	Get(ctx context.Context, lang string, lessonID int) (models.GeneratedLessonContent, bool, error)
	Set(ctx context.Context, lang string, lessonID int, content models.GeneratedLessonContent) error
	Invalidate(ctx context.Context, lang string, lessonID int) error
}

type redisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(cfg config.RedisConfig) (ContentCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &redisCache{client: client}, nil
}

func cacheKey(lang string, lessonID int) string {
	return fmt.Sprintf("%s_%s_%d", keyPrefix, lang, lessonID)
}

func (c *redisCache) Get(ctx context.Context, lang string, lessonID int) (models.GeneratedLessonContent, bool, error) {
	var content models.GeneratedLessonContent

	data, err := c.client.Get(ctx, cacheKey(lang, lessonID)).Bytes()
	if err == redis.Nil {
		return content, false, nil
	}
	if err != nil {
		return content, false, fmt.Errorf("failed to read cache: %w", err)
	}

	if err := json.Unmarshal(data, &content); err != nil {
		// Treat a corrupt entry as a miss so it gets regenerated
		return models.GeneratedLessonContent{}, false, nil
	}
	return content, true, nil
}

func (c *redisCache) Set(ctx context.Context, lang string, lessonID int, content models.GeneratedLessonContent) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	// Lessons are static; entries live until invalidated
	if err := c.client.Set(ctx, cacheKey(lang, lessonID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

func (c *redisCache) Invalidate(ctx context.Context, lang string, lessonID int) error {
	if err := c.client.Del(ctx, cacheKey(lang, lessonID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}
