package charts

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"inpatient-chart/internal/domain/admission"
	"inpatient-chart/internal/domain/pagination"
	"inpatient-chart/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// LiveStream atiende la conexión en vivo de una planilla; first es el primer mensaje enviado.
type LiveStream interface {
	Serve(w http.ResponseWriter, r *http.Request, topic string, first any) error
}

// RegisterRoutes: live puede ser nil (sin /live).
func RegisterRoutes(r chi.Router, svc *Service, live LiveStream) {
	r.Route("/charts", func(cr chi.Router) {
		cr.Post("/", createChartHandler(svc))

		cr.Route("/{chartID}", func(ir chi.Router) {
			ir.Get("/", getChartHandler(svc))
			ir.Delete("/", resetChartHandler(svc))

			ir.Patch("/header", updateHeaderHandler(svc))
			ir.Get("/layout", chartLayoutHandler(svc))
			if live != nil {
				ir.Get("/live", liveHandler(svc, live))
			}

			// Filas (table = diet | treatment)
			ir.Post("/{table}", addRowHandler(svc))
			ir.Patch("/{table}/{rowID}", updateRowHandler(svc))
			ir.Delete("/{table}/{rowID}", deleteRowHandler(svc))
		})
	})

	// Paginación sin sesión: la planilla viene completa en el body.
	r.Post("/layout", statelessLayoutHandler(svc))
}

type headerPayload struct {
	FileNo        string          `json:"file_no"`
	PetName       string          `json:"pet_name"`
	OwnerName     string          `json:"owner_name"`
	Doctor        string          `json:"doctor"`
	AssistantName string          `json:"assistant_name"`
	CageNo        string          `json:"cage_no"`
	Diagnosis     string          `json:"diagnosis"`
	AdmissionDate string          `json:"admission_date"` // YYYY-MM-DD
	DischargeDate string          `json:"discharge_date"` // YYYY-MM-DD
	Weight        string          `json:"weight,omitempty"`
	Stage         admission.Stage `json:"stage,omitempty"`
}

type updateHeaderRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	FileNo        *string `json:"file_no"`
	PetName       *string `json:"pet_name"`
	OwnerName     *string `json:"owner_name"`
	Doctor        *string `json:"doctor"`
	AssistantName *string `json:"assistant_name"`
	CageNo        *string `json:"cage_no"`
	Diagnosis     *string `json:"diagnosis"`
	AdmissionDate *string `json:"admission_date"`
	DischargeDate *string `json:"discharge_date"`
	Weight        *string `json:"weight"`
	Stage         *string `json:"stage"`
}

type rowRequest struct {
	Label *string `json:"label"`
	Dose  *string `json:"dose"`
	Type  *string `json:"type"` // Once | Twice
}

type chartResponse struct {
	ID           string        `json:"id"`
	Header       headerPayload `json:"header"`
	Diet         []Row         `json:"diet"`
	Treatment    []Row         `json:"treatment"`
	NextRowID    int64         `json:"next_row_id"`
	TotalDays    int           `json:"total_days"`
	PrintEnabled bool          `json:"print_enabled"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type layoutRequest struct {
	Header    headerPayload `json:"header"`
	Diet      []Row         `json:"diet"`
	Treatment []Row         `json:"treatment"`
	Mode      string        `json:"mode"` // screen | print (default)
}

// createChartHandler godoc
// @Summary Abrir una planilla nueva
// @Description Crea una sesión de edición en memoria con las filas semilla (dieta: Food, Water, Urine, Stool, Vomiting; tratamiento: una fila vacía).
// @Tags charts
// @Produce json
// @Success 201 {object} chartResponse
// @Router /charts [post]
func createChartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Create(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toChartResponse(c))
	}
}

// getChartHandler godoc
// @Summary Obtener una planilla
// @Tags charts
// @Produce json
// @Param chartID path string true "ID de la planilla"
// @Success 200 {object} chartResponse
// @Failure 404 {string} string "chart not found"
// @Router /charts/{chartID} [get]
func getChartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, "chartID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toChartResponse(c))
	}
}

// resetChartHandler godoc
// @Summary Descartar la planilla
// @Description Borra la sesión; los datos nunca se persisten.
// @Tags charts
// @Param chartID path string true "ID de la planilla"
// @Success 204
// @Failure 404 {string} string "chart not found"
// @Router /charts/{chartID} [delete]
func resetChartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context(), chi.URLParam(r, "chartID")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// updateHeaderHandler godoc
// @Summary Editar el formulario de ingreso
// @Description Aplica los formatters de cada campo (nombres, N° de ficha, jaula, peso). Rechaza alta anterior al ingreso o internaciones más largas que el máximo configurado.
// @Tags charts
// @Accept json
// @Produce json
// @Param chartID path string true "ID de la planilla"
// @Param payload body updateHeaderRequest true "Campos a modificar"
// @Success 200 {object} chartResponse
// @Failure 400 {string} string "invalid json / invalid dates / stay too long"
// @Failure 404 {string} string "chart not found"
// @Router /charts/{chartID}/header [patch]
func updateHeaderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateHeaderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p := HeaderPatch{
			FileNo:        req.FileNo,
			PetName:       req.PetName,
			OwnerName:     req.OwnerName,
			Doctor:        req.Doctor,
			AssistantName: req.AssistantName,
			CageNo:        req.CageNo,
			Diagnosis:     req.Diagnosis,
			AdmissionDate: req.AdmissionDate,
			DischargeDate: req.DischargeDate,
			Weight:        req.Weight,
		}
		if req.Stage != nil {
			st, ok := admission.ParseStage(*req.Stage)
			if !ok {
				http.Error(w, "stage must be stable, critical, observation or post_operative", http.StatusBadRequest)
				return
			}
			p.Stage = &st
		}

		c, err := svc.UpdateHeader(r.Context(), chi.URLParam(r, "chartID"), p)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toChartResponse(c))
	}
}

// addRowHandler godoc
// @Summary Agregar fila
// @Description "Add Row" (dieta, tipo Once) o "Add Medicine" (tratamiento, tipo Twice). El body es opcional.
// @Tags rows
// @Accept json
// @Produce json
// @Param chartID path string true "ID de la planilla"
// @Param table path string true "diet | treatment"
// @Param payload body rowRequest false "Valores iniciales"
// @Success 201 {object} Row
// @Failure 400 {string} string "invalid table / invalid json / invalid type"
// @Failure 404 {string} string "chart not found"
// @Router /charts/{chartID}/{table} [post]
func addRowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := ParseTable(chi.URLParam(r, "table"))
		if !ok {
			http.Error(w, "table must be diet or treatment", http.StatusBadRequest)
			return
		}

		var req rowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		p, ok := req.patch()
		if !ok {
			http.Error(w, "type must be Once or Twice", http.StatusBadRequest)
			return
		}

		_, row, err := svc.AddRow(r.Context(), chi.URLParam(r, "chartID"), t, p)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, row)
	}
}

// updateRowHandler godoc
// @Summary Editar fila
// @Tags rows
// @Accept json
// @Produce json
// @Param chartID path string true "ID de la planilla"
// @Param table path string true "diet | treatment"
// @Param rowID path int true "ID de la fila"
// @Param payload body rowRequest true "Campos a modificar"
// @Success 200 {object} Row
// @Failure 400 {string} string "invalid table / invalid row id / invalid json"
// @Failure 404 {string} string "chart not found / row not found"
// @Router /charts/{chartID}/{table}/{rowID} [patch]
func updateRowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, rowID, ok := rowParams(w, r)
		if !ok {
			return
		}

		var req rowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		p, ok := req.patch()
		if !ok {
			http.Error(w, "type must be Once or Twice", http.StatusBadRequest)
			return
		}

		_, row, err := svc.UpdateRow(r.Context(), chi.URLParam(r, "chartID"), t, rowID, p)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, row)
	}
}

// deleteRowHandler godoc
// @Summary Eliminar fila
// @Description Cada tabla debe conservar al menos una fila: borrar la última devuelve 409.
// @Tags rows
// @Param chartID path string true "ID de la planilla"
// @Param table path string true "diet | treatment"
// @Param rowID path int true "ID de la fila"
// @Success 204
// @Failure 404 {string} string "chart not found / row not found"
// @Failure 409 {string} string "each table must contain at least one row"
// @Router /charts/{chartID}/{table}/{rowID} [delete]
func deleteRowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, rowID, ok := rowParams(w, r)
		if !ok {
			return
		}

		if _, err := svc.DeleteRow(r.Context(), chi.URLParam(r, "chartID"), t, rowID); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// chartLayoutHandler godoc
// @Summary Paginación de la planilla
// @Description Hojas A4 con ventanas de fechas, filas por hoja y los bloques fijos de cada hoja según el modo.
// @Tags layout
// @Produce json
// @Param chartID path string true "ID de la planilla"
// @Param mode query string false "print (default) | screen"
// @Success 200 {object} LayoutView
// @Failure 400 {string} string "invalid mode"
// @Failure 404 {string} string "chart not found"
// @Router /charts/{chartID}/layout [get]
func chartLayoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, ok := pagination.ParseMode(r.URL.Query().Get("mode"))
		if !ok {
			http.Error(w, "mode must be screen or print", http.StatusBadRequest)
			return
		}

		v, err := svc.Layout(r.Context(), chi.URLParam(r, "chartID"), mode)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// statelessLayoutHandler godoc
// @Summary Paginar una planilla enviada en el body
// @Tags layout
// @Accept json
// @Produce json
// @Param payload body layoutRequest true "Formulario y filas"
// @Success 200 {object} LayoutView
// @Failure 400 {string} string "invalid json / invalid mode / empty table"
// @Router /layout [post]
func statelessLayoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req layoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		mode, ok := pagination.ParseMode(req.Mode)
		if !ok {
			http.Error(w, "mode must be screen or print", http.StatusBadRequest)
			return
		}
		if len(req.Diet) == 0 || len(req.Treatment) == 0 {
			http.Error(w, ErrLastRow.Error(), http.StatusBadRequest)
			return
		}

		c := Chart{
			Header:    req.Header.toHeader().Normalize(),
			Diet:      req.Diet,
			Treatment: req.Treatment,
		}
		writeJSON(w, http.StatusOK, svc.LayoutOf(c, mode))
	}
}

// liveHandler godoc
// @Summary Vista en vivo de la paginación (websocket)
// @Description Envía el layout actual al conectar y uno nuevo después de cada cambio en la planilla.
// @Tags layout
// @Param chartID path string true "ID de la planilla"
// @Success 101
// @Failure 404 {string} string "chart not found"
// @Router /charts/{chartID}/live [get]
func liveHandler(svc *Service, live LiveStream) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, "chartID"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		v := svc.LayoutOf(c, pagination.ModeScreen)
		first := Event{Type: EventLayout, ChartID: c.ID, Layout: &v}
		if err := live.Serve(w, r, c.ID, first); err != nil {
			// el upgrader ya respondió al cliente
			logger.FromContext(r.Context()).Warn("live stream rejected", map[string]any{
				"chart_id": c.ID,
				"error":    err.Error(),
			})
		}
	}
}

func rowParams(w http.ResponseWriter, r *http.Request) (Table, int64, bool) {
	t, ok := ParseTable(chi.URLParam(r, "table"))
	if !ok {
		http.Error(w, "table must be diet or treatment", http.StatusBadRequest)
		return "", 0, false
	}
	rowID, err := strconv.ParseInt(chi.URLParam(r, "rowID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid row id", http.StatusBadRequest)
		return "", 0, false
	}
	return t, rowID, true
}

func (req rowRequest) patch() (RowPatch, bool) {
	p := RowPatch{Label: req.Label, Dose: req.Dose}
	if req.Type != nil {
		rt, ok := ParseRowType(*req.Type)
		if !ok {
			return RowPatch{}, false
		}
		p.Type = &rt
	}
	return p, true
}

func (h headerPayload) toHeader() admission.Header {
	return admission.Header{
		FileNo:        h.FileNo,
		PetName:       h.PetName,
		OwnerName:     h.OwnerName,
		Doctor:        h.Doctor,
		AssistantName: h.AssistantName,
		CageNo:        h.CageNo,
		Diagnosis:     h.Diagnosis,
		AdmissionDate: h.AdmissionDate,
		DischargeDate: h.DischargeDate,
		Weight:        h.Weight,
		Stage:         h.Stage,
	}
}

func toHeaderPayload(h admission.Header) headerPayload {
	return headerPayload{
		FileNo:        h.FileNo,
		PetName:       h.PetName,
		OwnerName:     h.OwnerName,
		Doctor:        h.Doctor,
		AssistantName: h.AssistantName,
		CageNo:        h.CageNo,
		Diagnosis:     h.Diagnosis,
		AdmissionDate: h.AdmissionDate,
		DischargeDate: h.DischargeDate,
		Weight:        h.Weight,
		Stage:         h.Stage,
	}
}

func toChartResponse(c Chart) chartResponse {
	days := admission.StayDays(c.Header.AdmissionDate, c.Header.DischargeDate)
	return chartResponse{
		ID:           c.ID,
		Header:       toHeaderPayload(c.Header),
		Diet:         c.Diet,
		Treatment:    c.Treatment,
		NextRowID:    int64(c.NextRowID),
		TotalDays:    days,
		PrintEnabled: days > 0 && admission.IsComplete(c.Header),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "chart not found", http.StatusNotFound)
	case errors.Is(err, ErrRowNotFound):
		http.Error(w, "row not found", http.StatusNotFound)
	case errors.Is(err, ErrLastRow):
		http.Error(w, ErrLastRow.Error(), http.StatusConflict)
	case errors.Is(err, admission.ErrInvalidDates),
		errors.Is(err, admission.ErrStayTooLong),
		errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.FromContext(r.Context()).Error("chart request failed", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado en los handlers de cada módulo; todavía no justifica un paquete común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
