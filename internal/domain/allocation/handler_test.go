package allocation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inpatient-chart/internal/domain/pagination"

	"github.com/go-chi/chi/v5"
)

func newTestRouter() http.Handler {
	svc := NewService(pagination.DefaultCapacity())
	svc.now = func() time.Time { return fixedNow }

	r := chi.NewRouter()
	RegisterRoutes(r, svc)
	return r
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMatrixHandler_Formats(t *testing.T) {
	h := newTestRouter()

	text := get(t, h, "/allocation/matrix")
	if text.Code != http.StatusOK || !strings.HasPrefix(text.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("text: status=%d ct=%q", text.Code, text.Header().Get("Content-Type"))
	}

	csvRec := get(t, h, "/allocation/matrix?format=csv&total=6")
	if csvRec.Code != http.StatusOK || !strings.HasPrefix(csvRec.Header().Get("Content-Type"), "text/csv") {
		t.Fatalf("csv: status=%d", csvRec.Code)
	}
	if lines := strings.Count(csvRec.Body.String(), "\n"); lines != 6 {
		t.Fatalf("csv: expected 6 lines, got %d", lines)
	}

	jsonRec := get(t, h, "/allocation/matrix?format=json")
	var doc Document
	if err := json.Unmarshal(jsonRec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("json: %v", err)
	}
	if doc.Metadata.TotalCombinations != 10 || doc.Constraints.MaxIndividualDiet != 7 {
		t.Fatalf("json: unexpected document %+v", doc.Metadata)
	}

	if rec := get(t, h, "/allocation/matrix?format=xml"); rec.Code != http.StatusBadRequest {
		t.Fatalf("xml: expected 400, got %d", rec.Code)
	}
}

func TestAllocationHandlers_BadParams(t *testing.T) {
	h := newTestRouter()

	for _, path := range []string{
		"/allocation/matrix?total=1",
		"/allocation/matrix?total=abc",
		"/allocation/dashboard?diet=-1",
		"/allocation/table?dominance=nope",
		"/allocation/table?order=sideways",
		"/allocation/statistics?total=1000",
	} {
		if rec := get(t, h, path); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestDashboardHandler(t *testing.T) {
	rec := get(t, newTestRouter(), "/allocation/dashboard?diet=7&treatment=4")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var d Dashboard
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Status != StatusFull || d.Metrics.RemainingRows != 0 || len(d.Strategies) != 3 {
		t.Fatalf("unexpected dashboard %+v", d)
	}
	if d.Allocation != (pagination.Allocation{DietMax: 7, TreatmentMax: 4}) {
		t.Fatalf("unexpected allocation %+v", d.Allocation)
	}
}

func TestTableHandler_Filtered(t *testing.T) {
	rec := get(t, newTestRouter(), "/allocation/table?dominance=T%3ED&order=desc")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var tbl Table
	if err := json.Unmarshal(rec.Body.Bytes(), &tbl); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tbl.Rows) != 5 || tbl.Rows[0].Diet != 5 {
		t.Fatalf("unexpected rows %+v", tbl.Rows)
	}
}

func TestHeatmapAndReportHandlers(t *testing.T) {
	h := newTestRouter()

	if rec := get(t, h, "/allocation/heatmap?diet=4&treatment=7"); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "•") {
		t.Fatalf("heatmap: status=%d", rec.Code)
	}
	if rec := get(t, h, "/allocation/report"); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Diet Rows:       5") {
		t.Fatalf("report: status=%d body=%s", rec.Code, rec.Body.String())
	}
}
