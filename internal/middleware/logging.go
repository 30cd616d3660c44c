package middleware

import (
	"net/http"
	"time"

	"inpatient-chart/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logging deja en el contexto un logger con el request id y registra cada request al terminar.
// Va después de chimw.RequestID.
func Logging(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLog := log
			if id := chimw.GetReqID(r.Context()); id != "" {
				reqLog = log.With(map[string]any{"request_id": id})
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context(), reqLog)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"remote":      r.RemoteAddr,
			}
			switch {
			case status >= 500:
				reqLog.Error("http request", fields)
			case status >= 400:
				reqLog.Warn("http request", fields)
			default:
				reqLog.Info("http request", fields)
			}
		})
	}
}
