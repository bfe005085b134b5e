package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/translate-service/internal/config"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. Redis only
// backs the translation cache, so an unreachable instance is a warning.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// TranslationCache is a redis-backed read-through cache for translated text.
type TranslationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTranslationCache builds the cache on top of an existing client.
func NewTranslationCache(r *Redis, ttl time.Duration) *TranslationCache {
	if r == nil {
		return &TranslationCache{}
	}
	return &TranslationCache{client: r.Client, ttl: ttl}
}

// Get returns the cached translation for the key, or ok=false on miss or any
// cache error.
func (c *TranslationCache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, "translation:"+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a translation. Cache write failures are ignored.
func (c *TranslationCache) Set(ctx context.Context, key, translated string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, "translation:"+key, translated, c.ttl).Err()
}
