package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	rodcapture "inpatient-chart/internal/adapters/capture/rod"
	mem "inpatient-chart/internal/adapters/storage/memory"
	"inpatient-chart/internal/domain/charts"
	"inpatient-chart/internal/middleware"
	"inpatient-chart/internal/platform/config"
	"inpatient-chart/internal/platform/logger"
	"inpatient-chart/internal/platform/realtime"
	"inpatient-chart/internal/ports/capture"
	"inpatient-chart/internal/router"

	"github.com/joho/godotenv"
)

// @title Inpatient Chart API
// @version 1.0
// @description Planilla de internación veterinaria: sesión de edición, paginación A4, diagnóstico de repartos y PDF headless.
// @BasePath /
func main() {
	configPath := flag.String("config", "", "YAML de configuración (por defecto CHART_CONFIG)")
	flag.Parse()

	// .env es opcional
	_ = godotenv.Load()

	cfg, err := config.FromEnv(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(cfg.LoggerOptions())

	hub := realtime.NewHub(
		lg.With(map[string]any{"component": "realtime"}),
		middleware.OriginChecker(cfg.CORS.AllowedOrigins),
	)
	chartsSvc := charts.NewService(mem.NewChartRepo(), router.ChartsConfig(cfg), hub)

	var capturer capture.Capturer // sin capturer /print-pdf responde 503
	if cfg.Capture.Enabled {
		capturer = rodcapture.New(rodcapture.Config{
			BrowserBin: cfg.Capture.BrowserBin,
			Timeout:    cfg.Capture.Timeout,
		}, lg.With(map[string]any{"component": "capture"}))
	}

	r := router.NewRouter(router.Options{
		Config:   cfg,
		Logger:   lg,
		Capturer: capturer,
		Charts:   chartsSvc,
		Hub:      hub,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, chartsSvc, cfg.Sessions, lg)

	go func() {
		lg.Info("starting server", map[string]any{
			"addr":            cfg.Server.Addr,
			"capture_enabled": cfg.Capture.Enabled,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server error", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown no espera a las conexiones hijackeadas (websockets).
	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown error", map[string]any{"error": err.Error()})
	}
}

// sweepSessions descarta las planillas sin cambios por más de TTL.
func sweepSessions(ctx context.Context, svc *charts.Service, cfg config.SessionsConfig, lg logger.Logger) {
	if cfg.TTL <= 0 || cfg.SweepInterval <= 0 {
		return
	}

	ticker := time.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.SweepIdle(ctx, cfg.TTL)
			if err != nil {
				lg.Error("session sweep failed", map[string]any{"error": err.Error()})
				continue
			}
			if n > 0 {
				lg.Info("idle sessions discarded", map[string]any{"count": n})
			}
		}
	}
}
