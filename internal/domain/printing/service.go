package printing

import (
	"context"
	"errors"
	"strings"

	"inpatient-chart/internal/platform/logger"
	"inpatient-chart/internal/ports/capture"
)

var ErrCaptureDisabled = errors.New("pdf capture disabled")

type Defaults struct {
	URL      string
	Format   string
	Filename string
}

// Job: los campos vacíos toman los Defaults.
type Job struct {
	URL      string
	Filename string
	Format   string
}

type Result struct {
	PDF      []byte
	Filename string
}

type Service struct {
	capturer capture.Capturer // nil = deshabilitado
	defaults Defaults
	margins  capture.Margins
	log      logger.Logger
}

func NewService(c capture.Capturer, d Defaults, log logger.Logger) *Service {
	if strings.TrimSpace(d.URL) == "" {
		d.URL = "http://localhost:5173"
	}
	if strings.TrimSpace(d.Format) == "" {
		d.Format = "A4"
	}
	if strings.TrimSpace(d.Filename) == "" {
		d.Filename = "chart.pdf"
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		capturer: c,
		defaults: d,
		margins:  capture.ServerMargins(),
		log:      log,
	}
}

func (s *Service) Enabled() bool { return s.capturer != nil }

func (s *Service) Print(ctx context.Context, job Job) (Result, error) {
	if s.capturer == nil {
		return Result{}, ErrCaptureDisabled
	}

	url := strings.TrimSpace(job.URL)
	if url == "" {
		url = s.defaults.URL
	}
	format := strings.TrimSpace(job.Format)
	if format == "" {
		format = s.defaults.Format
	}
	paper, err := capture.ParsePaper(format)
	if err != nil {
		return Result{}, err
	}
	filename := SafeFilename(job.Filename)
	if filename == "" {
		filename = s.defaults.Filename
	}

	s.log.Info("generating pdf", map[string]any{"url": url, "format": paper.Name, "filename": filename})

	b, err := s.capturer.Capture(ctx, capture.Request{
		URL:             url,
		Paper:           paper,
		Margins:         s.margins,
		PrintBackground: true,
	})
	if err != nil {
		s.log.Error("pdf capture failed", map[string]any{"url": url, "error": err.Error()})
		return Result{}, err
	}
	return Result{PDF: b, Filename: filename}, nil
}

// SafeFilename deja solo el nombre base, sin comillas ni saltos de línea (va en Content-Disposition).
func SafeFilename(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '"', r < 0x20, r == 0x7f:
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}
