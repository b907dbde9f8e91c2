package config

import (
	"github.com/rapodaca/cas-number/internal/cache"
	pkgconfig "github.com/rapodaca/cas-number/pkg/config"
	"github.com/rapodaca/cas-number/pkg/database"
	"github.com/rapodaca/cas-number/pkg/pubsub"
	"github.com/rapodaca/cas-number/pkg/storage"
)

type Config struct {
	Server    ServerConfig
	GRPC      GRPCConfig
	Database  database.Config
	Storage   storage.Config
	PubSub    pubsub.Config `mapstructure:"pubsub"`
	Cache     cache.Config
	Generator GeneratorConfig
	Fixture   FixtureConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type GRPCConfig struct {
	Host string
	Port int
}

type GeneratorConfig struct {
	// FullDigitRange widens generated digits from 0..8 to 0..9.
	FullDigitRange bool `mapstructure:"full_digit_range"`
}

type FixtureConfig struct {
	// URLExpiry is the presigned URL lifetime in minutes.
	URLExpiry int `mapstructure:"url_expiry"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

func Load() (*Config, error) {
	return LoadFrom("./config")
}

// LoadFrom reads config.yaml from dir, then applies environment overrides.
func LoadFrom(dir string) (*Config, error) {
	v, err := pkgconfig.Load(dir, "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50060)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.file_path", "cas.db")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local.base_path", "./data")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("pubsub.driver", "none")
	v.SetDefault("pubsub.redis.address", "localhost:6379")
	v.SetDefault("pubsub.redis.pool_size", 10)
	v.SetDefault("pubsub.redis.read_timeout", "3s")
	v.SetDefault("pubsub.redis.write_timeout", "3s")
	v.SetDefault("cache.driver", "none")
	v.SetDefault("cache.address", "localhost:6379")
	v.SetDefault("cache.prefix", "cas")
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("generator.full_digit_range", false)
	v.SetDefault("fixture.url_expiry", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("storage.s3.endpoint", "S3_ENDPOINT")
	v.BindEnv("storage.s3.bucket", "S3_BUCKET")
	v.BindEnv("storage.s3.access_key_id", "S3_ACCESS_KEY_ID")
	v.BindEnv("storage.s3.secret_access_key", "S3_SECRET_ACCESS_KEY")
	v.BindEnv("pubsub.driver", "PUBSUB_DRIVER")
	v.BindEnv("pubsub.redis.address", "REDIS_ADDRESS")
	v.BindEnv("cache.driver", "CACHE_DRIVER")
	v.BindEnv("cache.address", "CACHE_REDIS_ADDRESS")
	v.BindEnv("cache.password", "CACHE_REDIS_PASSWORD")
	v.BindEnv("generator.full_digit_range", "CAS_FULL_DIGIT_RANGE")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
