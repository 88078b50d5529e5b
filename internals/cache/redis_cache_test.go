package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNilCacheIsMiss(t *testing.T) {
	var c *RedisCache
	ctx := context.Background()

	if c.Enabled() {
		t.Fatal("nil cache reports enabled")
	}
	var out int
	if err := c.Get(ctx, "k", &out); !errors.Is(err, ErrDisabled) {
		t.Fatalf("Get err = %v, want ErrDisabled", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete on nil cache: %v", err)
	}
	c.InvalidateReports(ctx)
}

func TestGetOrSetComputesWithoutRedis(t *testing.T) {
	var c *RedisCache
	calls := 0
	fn := func() ([]string, error) {
		calls++
		return []string{"salsa"}, nil
	}

	for i := 0; i < 2; i++ {
		got, err := GetOrSet(c, context.Background(), ReportPrefix+"x", time.Minute, fn)
		if err != nil {
			t.Fatalf("GetOrSet: %v", err)
		}
		if len(got) != 1 || got[0] != "salsa" {
			t.Fatalf("got %v", got)
		}
	}
	if calls != 2 {
		t.Fatalf("without a backend every call computes, calls = %d", calls)
	}
}

func TestGetOrSetPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := GetOrSet(nil, context.Background(), "k", time.Minute, func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}
