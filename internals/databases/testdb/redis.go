//go:build integration

package testdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"dancebook_backend/internals/cache"
)

// MustStartRedis boots a throwaway Redis and returns a connected cache; both go away on cleanup.
func MustStartRedis(t *testing.T) *cache.RedisCache {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rd, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start redis container: %v", err)
	}
	t.Cleanup(func() { _ = rd.Terminate(context.Background()) })

	host, err := rd.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := rd.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}

	rc, err := cache.NewRedisCache(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })
	return rc
}
