package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Server.Port != 8090 || cfg.GRPC.Port != 50060 {
		t.Errorf("ports = %d/%d", cfg.Server.Port, cfg.GRPC.Port)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.FilePath != "cas.db" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Storage.Driver != "local" || cfg.Storage.Local.BasePath != "./data" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Generator.FullDigitRange {
		t.Error("full_digit_range defaults to true")
	}
	if cfg.PubSub.Driver != "none" || cfg.PubSub.Redis.ReadTimeout != 3*time.Second {
		t.Errorf("pubsub = %+v", cfg.PubSub)
	}
	if cfg.Cache.Driver != "none" || cfg.Cache.TTL != 10*time.Minute || cfg.Cache.Prefix != "cas" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Fixture.URLExpiry != 60 {
		t.Errorf("fixture.url_expiry = %d", cfg.Fixture.URLExpiry)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
database:
  driver: postgres
  host: db.internal
  port: 5432
storage:
  driver: s3
  s3:
    bucket: fixtures
    use_path_style: true
generator:
  full_digit_range: true
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DB_HOST", "db.override")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.Port != 5432 {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Database.Host != "db.override" {
		t.Errorf("database.host = %q, want env override", cfg.Database.Host)
	}
	if cfg.Storage.Driver != "s3" || cfg.Storage.S3.Bucket != "fixtures" || !cfg.Storage.S3.UsePathStyle {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if !cfg.Generator.FullDigitRange {
		t.Error("full_digit_range not read from file")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q", cfg.Log.Level)
	}
}
