package store_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/speedwagon-io/condmon/internal/model"
	"github.com/speedwagon-io/condmon/internal/store"
)

// newTestStore opens a fresh in-memory SQLite store for each test.
func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := store.NewSQLiteStore(log, ":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleReport(assetTag string, status model.Status) *model.Report {
	r := model.NewReport(assetTag, "test pump", model.ModeRoutine)
	r.MaxZone = model.ZoneB
	r.Points = []model.PointResult{
		{Location: model.MotorDE, Axis: model.Horizontal, Value: 2.0, Zone: model.ZoneB, Remark: model.ZoneB.Remark()},
	}
	r.Overall = model.Overall{Status: status, Score: 0}
	return r
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := sampleReport("P-02", model.StatusGood)
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != r.ID || got.AssetTag != "P-02" || got.MaxZone != model.ZoneB {
		t.Errorf("loaded report mismatch: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "no-such-id")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListByAsset(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		r := sampleReport("P-02", model.StatusGood)
		r.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Second)
		if err := s.Save(ctx, r); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	other := sampleReport("733-P-103", model.StatusFair)
	if err := s.Save(ctx, other); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.ListByAsset(ctx, "P-02", 10)
	if err != nil {
		t.Fatalf("ListByAsset: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d reports, want 3", len(got))
	}
	for _, r := range got {
		if r.AssetTag != "P-02" {
			t.Errorf("listed report for wrong asset: %s", r.AssetTag)
		}
	}

	// Newest first.
	if got[0].CreatedAt.Before(got[len(got)-1].CreatedAt) {
		t.Error("reports not ordered newest first")
	}

	limited, err := s.ListByAsset(ctx, "P-02", 2)
	if err != nil {
		t.Fatalf("ListByAsset with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d reports with limit 2, want 2", len(limited))
	}
}

func TestCleanup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	old := sampleReport("P-02", model.StatusGood)
	old.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
	fresh := sampleReport("P-02", model.StatusGood)

	if err := s.Save(ctx, old); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, fresh); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := s.Cleanup(ctx, 24*time.Hour); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	if _, err := s.Get(ctx, old.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expired report still present (err = %v)", err)
	}
	if _, err := s.Get(ctx, fresh.ID); err != nil {
		t.Errorf("fresh report removed: %v", err)
	}
}

func TestCountByStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, st := range []model.Status{model.StatusGood, model.StatusGood, model.StatusBad} {
		if err := s.Save(ctx, sampleReport("P-02", st)); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	total, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 3 {
		t.Errorf("Count = %d, want 3", total)
	}

	counts, err := s.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if counts["GOOD"] != 2 || counts["BAD"] != 1 {
		t.Errorf("CountByStatus = %v, want GOOD:2 BAD:1", counts)
	}
}
