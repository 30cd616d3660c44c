package charts

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"inpatient-chart/internal/domain/admission"
	"inpatient-chart/internal/domain/pagination"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Chart
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Chart{}}
}

func (r *testRepo) Create(ctx context.Context, c Chart) error {
	if _, ok := r.byID[c.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[c.ID] = c.Clone()
	return nil
}

func (r *testRepo) Get(ctx context.Context, id string) (Chart, error) {
	c, ok := r.byID[id]
	if !ok {
		return Chart{}, ErrNotFound
	}
	return c.Clone(), nil
}

func (r *testRepo) Update(ctx context.Context, id string, fn func(c *Chart) error) (Chart, error) {
	c, ok := r.byID[id]
	if !ok {
		return Chart{}, ErrNotFound
	}
	next := c.Clone()
	if err := fn(&next); err != nil {
		return Chart{}, err
	}
	r.byID[id] = next
	return next.Clone(), nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) DeleteIdle(ctx context.Context, cutoff time.Time) (int, error) {
	n := 0
	for id, c := range r.byID {
		if c.UpdatedAt.Before(cutoff) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []Event
}

func (p *recordingPublisher) Publish(topic string, v any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	if e, ok := v.(Event); ok {
		p.events = append(p.events, e)
	}
}

func newTestService(pub Publisher) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, Config{Capacity: pagination.DefaultCapacity(), MaxStayDays: 60}, pub)
	svc.now = func() time.Time { return time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC) }
	return svc, repo
}

func strPtr(s string) *string { return &s }

func TestService_Create_SeedsRows(t *testing.T) {
	svc, _ := newTestService(nil)

	c, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == "" || len(c.Diet) != 5 || len(c.Treatment) != 1 || c.NextRowID != InitialCounter {
		t.Fatalf("unexpected chart %+v", c)
	}
	if c.Treatment[0].ID != 101 || c.Treatment[0].Type != RowTwice {
		t.Fatalf("unexpected treatment seed %+v", c.Treatment[0])
	}
}

func TestService_UpdateHeader_NormalizesAndPublishes(t *testing.T) {
	pub := &recordingPublisher{}
	svc, _ := newTestService(pub)
	ctx := context.Background()
	c, _ := svc.Create(ctx)

	got, err := svc.UpdateHeader(ctx, c.ID, HeaderPatch{
		FileNo:        strPtr("AB12-34"),
		PetName:       strPtr("  max   power "),
		CageNo:        strPtr("ip1"),
		AdmissionDate: strPtr("2025-01-01"),
		DischargeDate: strPtr("2025-01-20"),
	})
	if err != nil {
		t.Fatalf("UpdateHeader: %v", err)
	}
	if got.Header.FileNo != "1234" || got.Header.PetName != "Max Power" || got.Header.CageNo != "IP 1" {
		t.Fatalf("unexpected header %+v", got.Header)
	}

	if len(pub.events) != 1 || pub.topics[0] != c.ID {
		t.Fatalf("expected one published event for %s, got %v", c.ID, pub.topics)
	}
	ev := pub.events[0]
	if ev.Type != EventLayout || ev.Layout == nil || ev.Layout.TotalPages != 2 || ev.Layout.Mode != pagination.ModeScreen {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestService_UpdateHeader_RejectsBadDates(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	c, _ := svc.Create(ctx)

	_, err := svc.UpdateHeader(ctx, c.ID, HeaderPatch{
		AdmissionDate: strPtr("2025-01-10"),
		DischargeDate: strPtr("2025-01-01"),
	})
	if !errors.Is(err, admission.ErrInvalidDates) {
		t.Fatalf("expected ErrInvalidDates, got %v", err)
	}

	_, err = svc.UpdateHeader(ctx, c.ID, HeaderPatch{
		AdmissionDate: strPtr("2025-01-01"),
		DischargeDate: strPtr("2025-06-01"),
	})
	if !errors.Is(err, admission.ErrStayTooLong) {
		t.Fatalf("expected ErrStayTooLong, got %v", err)
	}

	stored, _ := svc.Get(ctx, c.ID)
	if stored.Header.AdmissionDate != "" {
		t.Fatalf("rejected header must not be stored: %+v", stored.Header)
	}
}

func TestService_UpdateHeader_InvalidStage(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	c, _ := svc.Create(ctx)

	bad := admission.Stage("sleepy")
	if _, err := svc.UpdateHeader(ctx, c.ID, HeaderPatch{Stage: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_AddRow_UsesSessionCounter(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	c, _ := svc.Create(ctx)

	_, r1, err := svc.AddRow(ctx, c.ID, TableTreatment, RowPatch{Label: strPtr("meloxicam"), Dose: strPtr("0.1 ml")})
	if err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	got, r2, _ := svc.AddRow(ctx, c.ID, TableDiet, RowPatch{})

	if r1.ID != 1001 || r2.ID != 1002 || got.NextRowID != 1002 {
		t.Fatalf("unexpected ids %d %d counter %d", r1.ID, r2.ID, got.NextRowID)
	}
	if r1.Label != "Meloxicam" || r1.Dose != "0.1 ML" || r1.Type != RowTwice {
		t.Fatalf("unexpected treatment row %+v", r1)
	}

	// una sesión nueva arranca su propio contador
	other, _ := svc.Create(ctx)
	_, r3, _ := svc.AddRow(ctx, other.ID, TableDiet, RowPatch{})
	if r3.ID != 1001 {
		t.Fatalf("counter must be per session, got %d", r3.ID)
	}
}

func TestService_DeleteRow_LastRowIsRejected(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	c, _ := svc.Create(ctx)

	if _, err := svc.DeleteRow(ctx, c.ID, TableTreatment, 101); !errors.Is(err, ErrLastRow) {
		t.Fatalf("expected ErrLastRow, got %v", err)
	}
	stored, _ := svc.Get(ctx, c.ID)
	if len(stored.Treatment) != 1 {
		t.Fatalf("treatment table must keep its row")
	}
}

func TestService_Layout_TwentyDays(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	c, _ := svc.Create(ctx)

	_, err := svc.UpdateHeader(ctx, c.ID, HeaderPatch{
		FileNo:        strPtr("123"),
		PetName:       strPtr("bruno"),
		OwnerName:     strPtr("ana perez"),
		Doctor:        strPtr("dr house"),
		AssistantName: strPtr("sam"),
		CageNo:        strPtr("icu2"),
		Diagnosis:     strPtr("parvovirus"),
		AdmissionDate: strPtr("2025-01-01"),
		DischargeDate: strPtr("2025-01-20"),
	})
	if err != nil {
		t.Fatalf("UpdateHeader: %v", err)
	}

	v, err := svc.Layout(ctx, c.ID, pagination.ModePrint)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if v.TotalPages != 2 || v.TotalDays != 20 || !v.PrintEnabled {
		t.Fatalf("unexpected layout pages=%d days=%d print=%v", v.TotalPages, v.TotalDays, v.PrintEnabled)
	}
	if v.Title != "IP_Chart_123_01-Jan-2025" || v.Filename != "chart_123.pdf" {
		t.Fatalf("unexpected naming %q %q", v.Title, v.Filename)
	}

	p1, p2 := v.Pages[0], v.Pages[1]
	if p1.Dates[0] != "1-Jan" || p2.Dates[0] != "16-Jan" || len(p2.Dates) != 5 {
		t.Fatalf("unexpected date windows %v / %v", p1.Dates, p2.Dates)
	}
	if !p1.Furniture.AdmissionForm || p2.Furniture.AdmissionForm {
		t.Fatalf("admission form only on the first page")
	}
	if len(p1.Diet) != 5 || len(p2.Diet) != 5 || len(p2.Treatment) != 1 {
		t.Fatalf("both pages show the full tables")
	}
	if len(v.Notices) != 0 {
		t.Fatalf("no row limit notices expected, got %+v", v.Notices)
	}
}

func TestService_Layout_OverflowNotice(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	c, _ := svc.Create(ctx)

	for i := 0; i < 7; i++ {
		if _, _, err := svc.AddRow(ctx, c.ID, TableDiet, RowPatch{}); err != nil {
			t.Fatalf("AddRow: %v", err)
		}
	}

	v, _ := svc.Layout(ctx, c.ID, pagination.ModeScreen)
	// 12 de dieta y 1 de tratamiento: 10 en la primera hoja, 2 en una de desborde.
	if v.TotalPages != 2 || v.Pages[1].Kind != pagination.PageKindOverflow {
		t.Fatalf("expected an overflow page, got %+v", v.Pages)
	}
	if !v.Empty || v.PrintEnabled {
		t.Fatalf("no dates yet: layout must be empty and not printable")
	}
	if v.Pages[1].ShowTreatment || !v.Pages[1].ShowDiet {
		t.Fatalf("overflow page should only show diet")
	}
	if len(v.Notices) != 1 || v.Notices[0].Table != TableDiet || v.Notices[0].MaxRows != 10 {
		t.Fatalf("unexpected notices %+v", v.Notices)
	}
}

func TestService_ResetAndSweep(t *testing.T) {
	pub := &recordingPublisher{}
	svc, repo := newTestService(pub)
	ctx := context.Background()

	a, _ := svc.Create(ctx)
	b, _ := svc.Create(ctx)

	if err := svc.Reset(ctx, a.ID); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, err := svc.Get(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after reset, got %v", err)
	}
	if len(pub.events) != 1 || pub.events[0].Type != EventReset {
		t.Fatalf("expected a reset event, got %+v", pub.events)
	}

	svc.now = func() time.Time { return time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC) }
	n, err := svc.SweepIdle(ctx, time.Hour)
	if err != nil || n != 1 {
		t.Fatalf("SweepIdle: n=%d err=%v", n, err)
	}
	if _, ok := repo.byID[b.ID]; ok {
		t.Fatalf("idle session should have been swept")
	}
}
