package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inpatient-chart/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestLogging_WritesAccessLineWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatText, App: "test", Output: &buf})

	var fromCtx logger.Logger
	h := chimw.RequestID(Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/charts/abc", nil))

	if fromCtx == nil {
		t.Fatalf("expected a logger in the request context")
	}
	out := buf.String()
	for _, want := range []string{"http request", "status=418", "path=/charts/abc", "method=GET", "bytes=15", "request_id="} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log line, got %q", want, out)
		}
	}
}

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	t.Run("wildcard", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		CORS([]string{"*"})(ok).ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("expected *, got %q", got)
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected passthrough, got %d", rec.Code)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/print-pdf", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		CORS([]string{"http://localhost:5173"})(ok).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Fatalf("unexpected origin %q", got)
		}
	})

	t.Run("origin not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.test")
		CORS([]string{"http://localhost:5173"})(ok).ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Fatalf("expected no allow-origin, got %q", got)
		}
	})
}

func TestOriginChecker(t *testing.T) {
	check := OriginChecker([]string{"http://localhost:5173/"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if !check(req) {
		t.Fatalf("requests without Origin must pass")
	}
	req.Header.Set("Origin", "HTTP://localhost:5173")
	if !check(req) {
		t.Fatalf("expected origin to match case-insensitively")
	}
	req.Header.Set("Origin", "http://other:5173")
	if check(req) {
		t.Fatalf("expected origin to be rejected")
	}
}
