package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/rapodaca/cas-number/pkg/cas"
)

func TestNewSelectsDriver(t *testing.T) {
	for _, driver := range []string{"", "none"} {
		c, err := New(Config{Driver: driver})
		if err != nil {
			t.Fatalf("New(%q): %v", driver, err)
		}
		if _, ok := c.(NopCache); !ok {
			t.Errorf("New(%q) = %T, want NopCache", driver, c)
		}
	}
	if _, err := New(Config{Driver: "memcached"}); err == nil {
		t.Error("New(memcached) succeeded")
	}
}

func TestNopCacheMisses(t *testing.T) {
	c := NopCache{}
	if _, err := c.Get(context.Background(), "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get = %v, want ErrCacheMiss", err)
	}
}

func TestBuildKey(t *testing.T) {
	n := cas.MustParse("7732-18-5")
	tests := []struct {
		prefix string
		want   string
	}{
		{"", "cas:sample:7732-18-5"},
		{"test", "test:sample:7732-18-5"},
	}
	for _, tt := range tests {
		if got := (NopCache{prefix: tt.prefix}).BuildKey(n); got != tt.want {
			t.Errorf("BuildKey with prefix %q = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}
