package printing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"inpatient-chart/internal/ports/capture"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/print-pdf", printPDFHandler(svc))
}

type printRequest struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Format   string `json:"format"` // A4 | Letter | Legal | ...
}

type errorResponse struct {
	Error string `json:"error"`
}

// printPDFHandler godoc
// @Summary Imprimir una URL a PDF
// @Description Abre la URL en un navegador headless, espera a que la red quede inactiva e imprime con fondos y sin encabezado/pie del navegador.
// @Tags printing
// @Accept json
// @Produce application/pdf
// @Param payload body printRequest false "url (default http://localhost:5173), filename (default chart.pdf), format (default A4)"
// @Success 200 {file} binary
// @Failure 400 {string} string "invalid json / unknown paper format"
// @Failure 500 {object} errorResponse
// @Failure 503 {string} string "pdf capture disabled"
// @Router /print-pdf [post]
func printPDFHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req printRequest
		// body vacío = todo por defecto
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Print(r.Context(), Job{URL: req.URL, Filename: req.Filename, Format: req.Format})
		if err != nil {
			switch {
			case errors.Is(err, ErrCaptureDisabled):
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
			case errors.Is(err, capture.ErrUnknownPaper):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			}
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(res.PDF)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(res.PDF)
	}
}

// helper mínimo (igual que en charts)
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
