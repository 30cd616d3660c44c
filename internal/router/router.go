package router

import (
	"encoding/json"
	"net/http"

	mem "inpatient-chart/internal/adapters/storage/memory"
	"inpatient-chart/internal/domain/allocation"
	"inpatient-chart/internal/domain/charts"
	"inpatient-chart/internal/domain/printing"
	"inpatient-chart/internal/middleware"
	"inpatient-chart/internal/platform/config"
	"inpatient-chart/internal/platform/logger"
	"inpatient-chart/internal/platform/realtime"
	"inpatient-chart/internal/ports/capture"

	_ "inpatient-chart/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config *config.Config // nil = config.Default()
	Logger logger.Logger  // nil = nop

	// Capturer nil = POST /print-pdf responde 503.
	Capturer capture.Capturer

	// Opcionales: si no vienen se arman in-memory.
	Charts *charts.Service
	Hub    *realtime.Hub
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	hub := opts.Hub
	if hub == nil {
		hub = realtime.NewHub(log, middleware.OriginChecker(cfg.CORS.AllowedOrigins))
	}

	chartsSvc := opts.Charts
	if chartsSvc == nil {
		chartsSvc = charts.NewService(mem.NewChartRepo(), ChartsConfig(cfg), hub)
	}
	allocSvc := allocation.NewService(cfg.Capacity)
	printSvc := printing.NewService(opts.Capturer, printing.Defaults{
		URL:      cfg.Capture.DefaultURL,
		Format:   cfg.Capture.DefaultFormat,
		Filename: cfg.Capture.DefaultFilename,
	}, log.With(map[string]any{"component": "printing"}))

	// Rutas por módulo
	charts.RegisterRoutes(r, chartsSvc, hub)
	allocation.RegisterRoutes(r, allocSvc)
	printing.RegisterRoutes(r, printSvc)

	return r
}

func ChartsConfig(cfg *config.Config) charts.Config {
	return charts.Config{
		Capacity:    cfg.Capacity,
		MaxStayDays: cfg.Sessions.MaxStayDays,
	}
}
