package cache

import (
	"context"
	"errors"
	"time"

	"github.com/rapodaca/cas-number/internal/domain"
	"github.com/rapodaca/cas-number/pkg/cas"
)

var ErrCacheMiss = errors.New("cache miss")

// SampleCache holds stored samples keyed by CAS number. Only hits are
// cached, so a number seeded after a miss is visible on the next lookup.
type SampleCache interface {
	Get(ctx context.Context, key string) (*domain.Sample, error)
	Set(ctx context.Context, key string, sample *domain.Sample, ttl time.Duration) error
	BuildKey(n cas.Number) string
	Close() error
}

// Config selects and configures the sample cache.
type Config struct {
	Driver   string        `mapstructure:"driver"` // "none", "redis"
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// New returns the cache selected by cfg.Driver. An empty driver or "none"
// disables caching.
func New(cfg Config) (SampleCache, error) {
	switch cfg.Driver {
	case "", "none":
		return NopCache{prefix: cfg.Prefix}, nil
	case "redis":
		return NewRedisSampleCache(cfg)
	default:
		return nil, errors.New("unsupported cache driver: " + cfg.Driver)
	}
}

// NopCache misses on every lookup.
type NopCache struct {
	prefix string
}

func (NopCache) Get(context.Context, string) (*domain.Sample, error) {
	return nil, ErrCacheMiss
}

func (NopCache) Set(context.Context, string, *domain.Sample, time.Duration) error {
	return nil
}

func (c NopCache) BuildKey(n cas.Number) string {
	return buildKey(c.prefix, n)
}

func (NopCache) Close() error {
	return nil
}

func buildKey(prefix string, n cas.Number) string {
	if prefix == "" {
		prefix = "cas"
	}
	return prefix + ":sample:" + n.String()
}
