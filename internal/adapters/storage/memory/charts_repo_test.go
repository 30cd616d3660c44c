package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"inpatient-chart/internal/domain/charts"
)

func TestChartRepo_UpdateIsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewChartRepo()

	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	if err := repo.Create(ctx, charts.NewChart("c1", now)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got.Diet[0].Label = "changed outside"

	again, _ := repo.Get(ctx, "c1")
	if again.Diet[0].Label != "Food" {
		t.Fatalf("stored chart mutated through returned copy: %q", again.Diet[0].Label)
	}

	_, err = repo.Update(ctx, "c1", func(c *charts.Chart) error {
		c.Diet = c.Diet[:1]
		return errors.New("boom")
	})
	if err == nil {
		t.Fatalf("expected error from fn")
	}
	again, _ = repo.Get(ctx, "c1")
	if len(again.Diet) != 5 {
		t.Fatalf("failed update must not be stored, got %d diet rows", len(again.Diet))
	}
}

func TestChartRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewChartRepo()

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, charts.ErrNotFound) {
		t.Fatalf("Get: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, charts.ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Update(ctx, "missing", func(*charts.Chart) error { return nil }); !errors.Is(err, charts.ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
}

func TestChartRepo_DeleteIdle(t *testing.T) {
	ctx := context.Background()
	repo := NewChartRepo()

	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	_ = repo.Create(ctx, charts.NewChart("old", base))
	_ = repo.Create(ctx, charts.NewChart("fresh", base.Add(2*time.Hour)))

	n, err := repo.DeleteIdle(ctx, base.Add(time.Hour))
	if err != nil || n != 1 {
		t.Fatalf("DeleteIdle: n=%d err=%v", n, err)
	}
	if _, err := repo.Get(ctx, "old"); !errors.Is(err, charts.ErrNotFound) {
		t.Fatalf("old session should be gone")
	}
	if _, err := repo.Get(ctx, "fresh"); err != nil {
		t.Fatalf("fresh session should remain: %v", err)
	}
}

func TestChartRepo_ConcurrentAddRow(t *testing.T) {
	ctx := context.Background()
	repo := NewChartRepo()
	_ = repo.Create(ctx, charts.NewChart("c1", time.Now()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Update(ctx, "c1", func(c *charts.Chart) error {
				rows, _, next := charts.AddRow(c.Diet, c.NextRowID, charts.DefaultRow(charts.TableDiet))
				c.Diet = rows
				c.NextRowID = next
				return nil
			})
		}()
	}
	wg.Wait()

	c, _ := repo.Get(ctx, "c1")
	if len(c.Diet) != 55 || c.NextRowID != charts.InitialCounter+50 {
		t.Fatalf("expected 55 rows and counter 1050, got %d rows counter %d", len(c.Diet), c.NextRowID)
	}

	seen := map[int64]bool{}
	for _, r := range c.Diet {
		if seen[r.ID] {
			t.Fatalf("duplicate row id %d", r.ID)
		}
		seen[r.ID] = true
	}
}
