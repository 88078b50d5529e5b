//go:build integration

package service

import (
	"context"
	"sync"
	"testing"

	"dancebook_backend/internals/databases/testdb"
	"dancebook_backend/internals/features/school/school_info/dto"
)

func TestSchoolInfoSingleton(t *testing.T) {
	h := testdb.MustStart(t)
	h.Reset(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Get(ctx, h.Gorm); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent get: %v", err)
	}
	if n := h.Count(t, "school_info"); n != 1 {
		t.Fatalf("school_info has %d rows, want 1", n)
	}

	info, err := Get(ctx, h.Gorm)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if info.Name == "" || info.TransferTitlePrefix == "" {
		t.Fatalf("defaults missing: %+v", info)
	}

	name := "Studio Tańca Rytm"
	blik := "600700800"
	updated, err := Update(ctx, h.Gorm, dto.SchoolInfoUpdateRequest{Name: &name, BlikNumber: &blik})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != name || updated.BlikNumber != blik || updated.Address != info.Address {
		t.Fatalf("partial update = %+v", updated)
	}
	if !updated.UpdatedAt.After(info.UpdatedAt) {
		t.Fatalf("updated_at not bumped")
	}
	if n := h.Count(t, "school_info"); n != 1 {
		t.Fatalf("update created a second row")
	}
}
