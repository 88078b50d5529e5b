//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/lib/pq"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	database "dancebook_backend/internals/databases"
)

type DBHandle struct {
	Gorm   *gorm.DB
	SQL    *sql.DB
	cancel func()
	stop   func(context.Context) error
}

func (h *DBHandle) Close() {
	database.Close(h.Gorm)
	if h.SQL != nil {
		_ = h.SQL.Close()
	}
	if h.stop != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.stop(ctx)
	}
	if h.cancel != nil {
		h.cancel()
	}
}

// Start boots a throwaway PostgreSQL, applies the embedded migrations and opens gorm on it.
func Start(ctx context.Context) (*DBHandle, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	pg, err := postgres.RunContainer(ctx,
		tc.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("dancebook"),
		postgres.WithUsername("dancebook"),
		postgres.WithPassword("dancebook"),
	)
	if err != nil {
		cancel()
		return nil, err
	}
	fail := func(err error) (*DBHandle, error) {
		_ = pg.Terminate(context.Background())
		cancel()
		return nil, err
	}

	uri, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail(err)
	}

	sqlDB, err := sql.Open("postgres", uri)
	if err != nil {
		return fail(err)
	}
	if err := waitReady(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return fail(err)
	}
	if err := database.Migrate(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return fail(err)
	}

	gdb, err := database.Open(uri)
	if err != nil {
		_ = sqlDB.Close()
		return fail(err)
	}

	return &DBHandle{
		Gorm:   gdb,
		SQL:    sqlDB,
		cancel: cancel,
		stop:   pg.Terminate,
	}, nil
}

// MustStart is Start for tests; the container is removed on cleanup.
func MustStart(t *testing.T) *DBHandle {
	t.Helper()
	h, err := Start(context.Background())
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(h.Close)
	return h
}

// Reset empties every domain table between tests.
func (h *DBHandle) Reset(t *testing.T) {
	t.Helper()
	const q = `TRUNCATE bookings, attendances, payments, classes, instructors, students,
		refresh_tokens, token_blacklist, users, school_info RESTART IDENTITY CASCADE`
	if _, err := h.SQL.Exec(q); err != nil {
		t.Fatalf("reset: %v", err)
	}
}

func waitReady(ctx context.Context, db *sql.DB) error {
	dead := time.Now().Add(20 * time.Second)
	for time.Now().Before(dead) {
		if err := db.PingContext(ctx); err == nil {
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return errors.New("db not ready")
}
