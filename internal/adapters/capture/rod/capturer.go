// Package rod implementa capture.Capturer con un Chromium headless controlado por go-rod.
package rod

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"inpatient-chart/internal/platform/logger"
	"inpatient-chart/internal/ports/capture"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

var ErrEmptyURL = errors.New("capture url required")

// Tiempo sin requests pendientes para considerar la página lista.
const networkIdle = 500 * time.Millisecond

type Config struct {
	// BrowserBin vacío deja que el launcher use (o descargue) su Chromium.
	BrowserBin string
	Timeout    time.Duration
}

type Capturer struct {
	bin     string
	timeout time.Duration
	log     logger.Logger
}

func New(cfg Config, log logger.Logger) *Capturer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Capturer{
		bin:     strings.TrimSpace(cfg.BrowserBin),
		timeout: timeout,
		log:     log,
	}
}

var _ capture.Capturer = (*Capturer)(nil)

// Capture lanza un navegador por captura y lo cierra al terminar.
func (c *Capturer) Capture(ctx context.Context, req capture.Request) ([]byte, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, ErrEmptyURL
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	l := launcher.New().Context(ctx).Headless(true)
	if c.bin != "" {
		l = l.Bin(c.bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer func() {
		l.Kill()
		l.Cleanup()
	}()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}

	started := time.Now()
	waitIdle := page.WaitRequestIdle(networkIdle, nil, nil, nil)
	if err := page.Navigate(req.URL); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", req.URL, err)
	}
	waitIdle()
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	stream, err := page.PDF(printOptions(req))
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	b, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}

	c.log.Info("pdf captured", map[string]any{
		"url":         req.URL,
		"paper":       req.Paper.Name,
		"bytes":       len(b),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return b, nil
}

func printOptions(req capture.Request) *proto.PagePrintToPDF {
	paper := req.Paper
	if paper.Width <= 0 || paper.Height <= 0 {
		paper = capture.A4()
	}
	m := req.Margins
	return &proto.PagePrintToPDF{
		PrintBackground:     req.PrintBackground,
		DisplayHeaderFooter: false,
		PaperWidth:          gson.Num(paper.Width),
		PaperHeight:         gson.Num(paper.Height),
		MarginTop:           gson.Num(capture.MMToInches(m.Top)),
		MarginBottom:        gson.Num(capture.MMToInches(m.Bottom)),
		MarginLeft:          gson.Num(capture.MMToInches(m.Left)),
		MarginRight:         gson.Num(capture.MMToInches(m.Right)),
	}
}
