package capture

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPaper = errors.New("unknown paper format")

// Capturer imprime una URL a PDF con el motor de impresión de un navegador.
type Capturer interface {
	Capture(ctx context.Context, req Request) ([]byte, error)
}

type Request struct {
	URL             string
	Paper           Paper
	Margins         Margins
	PrintBackground bool
}

// Paper en pulgadas, como lo espera el protocolo de impresión.
type Paper struct {
	Name   string
	Width  float64
	Height float64
}

var papers = map[string]Paper{
	"letter":  {Name: "Letter", Width: 8.5, Height: 11},
	"legal":   {Name: "Legal", Width: 8.5, Height: 14},
	"tabloid": {Name: "Tabloid", Width: 11, Height: 17},
	"ledger":  {Name: "Ledger", Width: 17, Height: 11},
	"a0":      {Name: "A0", Width: 33.1, Height: 46.8},
	"a1":      {Name: "A1", Width: 23.4, Height: 33.1},
	"a2":      {Name: "A2", Width: 16.54, Height: 23.4},
	"a3":      {Name: "A3", Width: 11.7, Height: 16.54},
	"a4":      {Name: "A4", Width: 8.27, Height: 11.7},
	"a5":      {Name: "A5", Width: 5.83, Height: 8.27},
	"a6":      {Name: "A6", Width: 4.13, Height: 5.83},
}

// ParsePaper no distingue mayúsculas; vacío es A4.
func ParsePaper(s string) (Paper, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		s = "a4"
	}
	p, ok := papers[s]
	if !ok {
		return Paper{}, fmt.Errorf("%w: %q", ErrUnknownPaper, s)
	}
	return p, nil
}

func A4() Paper { return papers["a4"] }

// Margins en milímetros.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

func UniformMargins(mm float64) Margins {
	return Margins{Top: mm, Bottom: mm, Left: mm, Right: mm}
}

// ServerMargins deja más ancho útil para la tabla de fechas.
func ServerMargins() Margins {
	return Margins{Top: 10, Bottom: 10, Left: 8, Right: 8}
}

func MMToInches(mm float64) float64 { return mm / 25.4 }
