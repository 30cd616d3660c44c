package printing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inpatient-chart/internal/ports/capture"

	"github.com/go-chi/chi/v5"
)

type fakeCapturer struct {
	got capture.Request
	pdf []byte
	err error
}

func (f *fakeCapturer) Capture(_ context.Context, req capture.Request) ([]byte, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func newTestServer(t *testing.T, c capture.Capturer) *httptest.Server {
	t.Helper()
	var svc *Service
	if c == nil {
		svc = NewService(nil, Defaults{}, nil)
	} else {
		svc = NewService(c, Defaults{URL: "http://localhost:5173"}, nil)
	}
	r := chi.NewRouter()
	RegisterRoutes(r, svc)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/print-pdf", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestPrintPDF_Defaults(t *testing.T) {
	fc := &fakeCapturer{pdf: []byte("%PDF-1.4 fake")}
	ts := newTestServer(t, fc)

	resp := post(t, ts.URL, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="chart.pdf"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	if buf.String() != "%PDF-1.4 fake" {
		t.Fatalf("unexpected body %q", buf.String())
	}

	if fc.got.URL != "http://localhost:5173" || fc.got.Paper.Name != "A4" || !fc.got.PrintBackground {
		t.Fatalf("unexpected capture request %+v", fc.got)
	}
	if fc.got.Margins != capture.ServerMargins() {
		t.Fatalf("unexpected margins %+v", fc.got.Margins)
	}
}

func TestPrintPDF_CustomRequest(t *testing.T) {
	fc := &fakeCapturer{pdf: []byte("pdf")}
	ts := newTestServer(t, fc)

	resp := post(t, ts.URL, `{"url":"http://localhost:5173/?chart=1","filename":"../chart_A12.pdf","format":"letter"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="chart_A12.pdf"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if fc.got.URL != "http://localhost:5173/?chart=1" || fc.got.Paper.Name != "Letter" {
		t.Fatalf("unexpected capture request %+v", fc.got)
	}
}

func TestPrintPDF_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		ts := newTestServer(t, &fakeCapturer{})
		if resp := post(t, ts.URL, `{"format":"B5"}`); resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ts := newTestServer(t, &fakeCapturer{})
		if resp := post(t, ts.URL, `{`); resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		ts := newTestServer(t, nil)
		if resp := post(t, ts.URL, `{}`); resp.StatusCode != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", resp.StatusCode)
		}
	})

	t.Run("capture failure", func(t *testing.T) {
		ts := newTestServer(t, &fakeCapturer{err: errors.New("navigation timeout")})
		resp := post(t, ts.URL, `{}`)
		if resp.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", resp.StatusCode)
		}
		var body errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Error != "navigation timeout" {
			t.Fatalf("unexpected error body %+v", body)
		}
	})
}

func TestSafeFilename(t *testing.T) {
	cases := map[string]string{
		"chart.pdf":         "chart.pdf",
		"  x.pdf ":          "x.pdf",
		`a/b\c.pdf`:         "c.pdf",
		"bad\"name\r\n.pdf": "badname.pdf",
		"":                  "",
	}
	for in, want := range cases {
		if got := SafeFilename(in); got != want {
			t.Fatalf("SafeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
