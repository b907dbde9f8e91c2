package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "grpc:\n  port: 6000\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "svc.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	v, err := Load(dir, "svc")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := v.GetInt("grpc.port"); got != 6000 {
		t.Errorf("grpc.port = %d, want 6000", got)
	}
	if got := v.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "svc.yaml"), []byte("grpc:\n  port: 6000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRPC_PORT", "7000")

	v, err := Load(dir, "svc")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := v.GetInt("grpc.port"); got != 7000 {
		t.Errorf("grpc.port = %d, want 7000", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	v, err := Load(t.TempDir(), "does-not-exist")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v == nil {
		t.Fatal("Load returned nil viper")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "svc.yaml"), []byte("grpc: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir, "svc"); err == nil {
		t.Error("Load of malformed yaml succeeded, want error")
	}
}
