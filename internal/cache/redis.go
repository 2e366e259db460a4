package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creatorqa/profile-service/internal/config"
	"github.com/creatorqa/profile-service/internal/models"
)

// RedisCache — реализация ProfileCache на go-redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedis создаёт клиент Redis и делает fail-fast ping.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	const op = "cache/redis/NewRedis"

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RedisCache{client: client}, nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func cacheKey(username string) string {
	return "profile:username:" + strings.ToLower(username)
}

// Get возвращает закешированный профиль; (nil, nil) — промах.
func (c *RedisCache) Get(ctx context.Context, username string) (*models.Profile, error) {
	const op = "cache/redis/Get"

	val, err := c.client.Get(ctx, cacheKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var profile models.Profile
	if err := json.Unmarshal(val, &profile); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &profile, nil
}

// Set кладёт профиль с заданным TTL. Вопросы не кешируем:
// страница вопросов пагинируется отдельно.
func (c *RedisCache) Set(ctx context.Context, profile *models.Profile, ttl time.Duration) error {
	const op = "cache/redis/Set"

	if profile.Username == "" {
		return nil
	}

	clone := *profile
	clone.Questions = nil

	val, err := json.Marshal(&clone)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.client.Set(ctx, cacheKey(profile.Username), val, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Invalidate удаляет запись после изменения профиля.
func (c *RedisCache) Invalidate(ctx context.Context, username string) error {
	const op = "cache/redis/Invalidate"

	if username == "" {
		return nil
	}

	if err := c.client.Del(ctx, cacheKey(username)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Проверка выполнения контракта.
var _ ProfileCache = (*RedisCache)(nil)
