package allocation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"inpatient-chart/internal/domain/pagination"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/allocation", func(ar chi.Router) {
		ar.Get("/matrix", matrixHandler(svc))
		ar.Get("/table", tableHandler(svc))
		ar.Get("/complementary", complementaryHandler(svc))
		ar.Get("/default", defaultTableHandler(svc))
		ar.Get("/a4", a4Handler(svc))
		ar.Get("/heatmap", heatmapHandler(svc))
		ar.Get("/report", reportHandler(svc))
		ar.Get("/statistics", statisticsHandler(svc))
		ar.Get("/dashboard", dashboardHandler(svc))
		ar.Get("/printable", printableHandler(svc))
	})
}

// matrixHandler godoc
// @Summary Matriz de repartos D+T=TT
// @Description Todas las combinaciones de filas de dieta y tratamiento que suman la capacidad total. `format` = text (por defecto), csv o json.
// @Tags allocation
// @Produce plain
// @Produce json
// @Param total query int false "Capacidad total (por defecto la configurada)"
// @Param format query string false "text | csv | json"
// @Success 200 {object} Document
// @Failure 400 {string} string "invalid total / unknown format"
// @Router /allocation/matrix [get]
func matrixHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := capacityParam(w, r, svc)
		if !ok {
			return
		}

		switch strings.ToLower(r.URL.Query().Get("format")) {
		case "", "text":
			writeText(w, MatrixTable(c.TotalRows))
		case "csv":
			var buf bytes.Buffer
			if err := WriteCSV(&buf, c.TotalRows); err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="allocation_matrix.csv"`)
			_, _ = w.Write(buf.Bytes())
		case "json":
			writeJSON(w, http.StatusOK, Export(c, svc.now()))
		default:
			http.Error(w, "format must be text, csv or json", http.StatusBadRequest)
		}
	}
}

// tableHandler godoc
// @Summary Tabla estructurada de repartos
// @Tags allocation
// @Produce json
// @Param total query int false "Capacidad total"
// @Param dominance query string false "all | D>T | T>D | D=T"
// @Param order query string false "asc | desc"
// @Success 200 {object} Table
// @Failure 400 {string} string "invalid total / dominance / order"
// @Router /allocation/table [get]
func tableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter, ok := ParseDominance(q.Get("dominance"))
		if !ok {
			http.Error(w, "dominance must be all, D>T, T>D or D=T", http.StatusBadRequest)
			return
		}

		order := SortOrder(strings.ToLower(strings.TrimSpace(q.Get("order"))))
		if order != "" && order != Asc && order != Desc {
			http.Error(w, "order must be asc or desc", http.StatusBadRequest)
			return
		}

		total, ok := intParam(w, r, "total", 0)
		if !ok {
			return
		}

		t, err := svc.Table(total, filter, order)
		if err != nil {
			http.Error(w, "invalid total", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// complementaryHandler godoc
// @Summary Tablas D>T y T>D lado a lado
// @Tags allocation
// @Produce json
// @Param total query int false "Capacidad total"
// @Success 200 {object} ComplementaryTables
// @Router /allocation/complementary [get]
func complementaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, ok := intParam(w, r, "total", 0)
		if !ok {
			return
		}
		out, err := svc.Complementary(total)
		if err != nil {
			http.Error(w, "invalid total", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// defaultTableHandler godoc
// @Summary Repartos válidos para el estado actual
// @Tags allocation
// @Produce json
// @Param diet query int false "Filas de dieta actuales (5)"
// @Param treatment query int false "Filas de tratamiento actuales (1)"
// @Param total query int false "Capacidad total"
// @Success 200 {object} DefaultAllocation
// @Router /allocation/default [get]
func defaultTableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		diet, treatment, total, ok := stateParams(w, r)
		if !ok {
			return
		}
		out, err := svc.Default(diet, treatment, total)
		if err != nil {
			http.Error(w, "invalid total", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// a4Handler godoc
// @Summary Matriz paginada para A4
// @Tags allocation
// @Produce json
// @Param total query int false "Capacidad total"
// @Param rows_per_page query int false "Filas por hoja (10)"
// @Success 200 {object} PagedTable
// @Router /allocation/a4 [get]
func a4Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := capacityParam(w, r, svc)
		if !ok {
			return
		}
		perPage, ok := intParam(w, r, "rows_per_page", DefaultRowsPerPage)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, A4Paged(c.TotalRows, perPage))
	}
}

// heatmapHandler godoc
// @Summary Mapa de calor de repartos
// @Tags allocation
// @Produce plain
// @Param diet query int false "Filas de dieta actuales (5)"
// @Param treatment query int false "Filas de tratamiento actuales (1)"
// @Param total query int false "Capacidad total"
// @Success 200 {string} string
// @Router /allocation/heatmap [get]
func heatmapHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		diet, treatment, total, ok := stateParams(w, r)
		if !ok {
			return
		}
		c, err := svc.Capacity(total)
		if err != nil {
			http.Error(w, "invalid total", http.StatusBadRequest)
			return
		}
		writeText(w, Heatmap(diet, treatment, c.TotalRows))
	}
}

// reportHandler godoc
// @Summary Informe de uso de la capacidad
// @Tags allocation
// @Produce plain
// @Param diet query int false "Filas de dieta actuales (5)"
// @Param treatment query int false "Filas de tratamiento actuales (1)"
// @Param total query int false "Capacidad total"
// @Success 200 {string} string
// @Router /allocation/report [get]
func reportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		diet, treatment, total, ok := stateParams(w, r)
		if !ok {
			return
		}
		c, err := svc.Capacity(total)
		if err != nil {
			http.Error(w, "invalid total", http.StatusBadRequest)
			return
		}
		writeText(w, Report(diet, treatment, c))
	}
}

// statisticsHandler godoc
// @Summary Estadísticas de la matriz
// @Tags allocation
// @Produce json
// @Param total query int false "Capacidad total"
// @Success 200 {object} Statistics
// @Router /allocation/statistics [get]
func statisticsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := capacityParam(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, ComputeStatistics(c.TotalRows))
	}
}

// dashboardHandler godoc
// @Summary Panel de monitoreo de la primera hoja
// @Description Estado FULL / CRITICAL / WARNING / OK según las filas libres, más estrategias alternativas.
// @Tags allocation
// @Produce json
// @Param diet query int false "Filas de dieta actuales (5)"
// @Param treatment query int false "Filas de tratamiento actuales (1)"
// @Param total query int false "Capacidad total"
// @Success 200 {object} Dashboard
// @Router /allocation/dashboard [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		diet, treatment, total, ok := stateParams(w, r)
		if !ok {
			return
		}
		out, err := svc.Dashboard(diet, treatment, total)
		if err != nil {
			http.Error(w, "invalid total", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// printableHandler godoc
// @Summary Documento imprimible con todas las vistas de la matriz
// @Tags allocation
// @Produce json
// @Param diet query int false "Filas de dieta actuales (5)"
// @Param treatment query int false "Filas de tratamiento actuales (1)"
// @Param total query int false "Capacidad total"
// @Success 200 {object} PrintableTable
// @Router /allocation/printable [get]
func printableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		diet, treatment, total, ok := stateParams(w, r)
		if !ok {
			return
		}
		out, err := svc.Printable(diet, treatment, total)
		if err != nil {
			http.Error(w, "invalid total", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// Semilla del formulario: 5 filas de dieta y 1 de tratamiento.
const (
	defaultDiet      = 5
	defaultTreatment = 1
)

func stateParams(w http.ResponseWriter, r *http.Request) (diet, treatment, total int, ok bool) {
	if diet, ok = intParam(w, r, "diet", defaultDiet); !ok {
		return
	}
	if treatment, ok = intParam(w, r, "treatment", defaultTreatment); !ok {
		return
	}
	total, ok = intParam(w, r, "total", 0)
	return
}

func capacityParam(w http.ResponseWriter, r *http.Request, svc *Service) (pagination.Capacity, bool) {
	total, ok := intParam(w, r, "total", 0)
	if !ok {
		return pagination.Capacity{}, false
	}
	c, err := svc.Capacity(total)
	if err != nil {
		http.Error(w, "invalid total", http.StatusBadRequest)
		return pagination.Capacity{}, false
	}
	return c, true
}

// intParam lee un entero no negativo de la query; ausente = def.
func intParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		http.Error(w, name+" must be a non-negative integer", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func writeText(w http.ResponseWriter, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s))
}

// writeJSON está duplicado en los handlers de cada módulo; todavía no justifica un paquete común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
