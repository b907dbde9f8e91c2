package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rapodaca/cas-number/internal/domain"
	"github.com/rapodaca/cas-number/pkg/cas"
)

type RedisSampleCache struct {
	client *redis.Client
	prefix string
}

func NewRedisSampleCache(cfg Config) (*RedisSampleCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisSampleCache{
		client: client,
		prefix: cfg.Prefix,
	}, nil
}

func (c *RedisSampleCache) BuildKey(n cas.Number) string {
	return buildKey(c.prefix, n)
}

func (c *RedisSampleCache) Get(ctx context.Context, key string) (*domain.Sample, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var sample domain.Sample
	if err := json.Unmarshal(data, &sample); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}

	return &sample, nil
}

func (c *RedisSampleCache) Set(ctx context.Context, key string, sample *domain.Sample, ttl time.Duration) error {
	data, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}

	return nil
}

func (c *RedisSampleCache) Close() error {
	return c.client.Close()
}
