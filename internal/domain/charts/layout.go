package charts

import (
	"inpatient-chart/internal/domain/admission"
	"inpatient-chart/internal/domain/pagination"
)

// PageView es una hoja lista para dibujar.
type PageView struct {
	Index  int                 `json:"index"`
	Number int                 `json:"number"`
	Kind   pagination.PageKind `json:"kind"`

	Dates     []string `json:"dates"`
	Diet      []Row    `json:"diet"`
	Treatment []Row    `json:"treatment"`

	ShowDiet      bool `json:"show_diet"`
	ShowTreatment bool `json:"show_treatment"`

	IsFirst   bool                 `json:"is_first"`
	IsLast    bool                 `json:"is_last"`
	Furniture pagination.Furniture `json:"furniture"`
}

// RowLimitNotice avisa que una tabla ya no entra en la primera hoja y sigue en hojas de desborde.
type RowLimitNotice struct {
	Table         Table `json:"table"`
	MaxRows       int   `json:"max_rows"`
	DietRows      int   `json:"diet_rows"`
	TreatmentRows int   `json:"treatment_rows"`
	MaxTotalRows  int   `json:"max_total_rows"`
}

// LayoutView es la paginación completa de una planilla más lo que necesita la UI alrededor.
type LayoutView struct {
	ChartID string                `json:"chart_id,omitempty"`
	Mode    pagination.RenderMode `json:"mode"`

	Title    string `json:"title"`
	Filename string `json:"filename"`

	TotalDays     int      `json:"total_days"`
	PrintEnabled  bool     `json:"print_enabled"`
	MissingFields []string `json:"missing_fields"`
	Empty         bool     `json:"empty"`

	AdmissionDisplay string `json:"admission_display"`
	DischargeDisplay string `json:"discharge_display"`

	Allocation             pagination.Allocation `json:"allocation"`
	DatePages              int                   `json:"date_pages"`
	DietOverflowPages      int                   `json:"diet_overflow_pages"`
	TreatmentOverflowPages int                   `json:"treatment_overflow_pages"`
	TotalPages             int                   `json:"total_pages"`

	Pages   []PageView       `json:"pages"`
	Notices []RowLimitNotice `json:"notices"`
}

// BuildLayout no depende de la sesión: sirve igual para una planilla guardada o una recibida por POST.
func BuildLayout(h admission.Header, diet, treatment []Row, c pagination.Capacity, mode pagination.RenderMode) LayoutView {
	dates := h.Dates()
	l := pagination.Paginate(dates, diet, treatment, c)

	pages := make([]PageView, 0, len(l.Pages))
	for _, p := range l.Pages {
		showDiet := p.Kind == pagination.PageKindDates || len(p.Diet) > 0
		showTreat := p.Kind == pagination.PageKindDates || len(p.Treatment) > 0

		pages = append(pages, PageView{
			Index:         p.Index,
			Number:        p.Index + 1,
			Kind:          p.Kind,
			Dates:         p.Dates,
			Diet:          p.Diet,
			Treatment:     p.Treatment,
			ShowDiet:      showDiet,
			ShowTreatment: showTreat,
			IsFirst:       p.IsFirst,
			IsLast:        p.IsLast,
			Furniture:     p.Furniture(mode),
		})
	}

	return LayoutView{
		Mode:                   mode,
		Title:                  admission.DocumentTitle(h.FileNo, h.AdmissionDate),
		Filename:               admission.PDFFilename(h.FileNo),
		TotalDays:              len(dates),
		PrintEnabled:           len(dates) > 0 && admission.IsComplete(h),
		MissingFields:          admission.MissingFields(h),
		Empty:                  l.Empty,
		AdmissionDisplay:       admission.FormatDisplayDate(h.AdmissionDate),
		DischargeDisplay:       admission.FormatDisplayDate(h.DischargeDate),
		Allocation:             l.Allocation,
		DatePages:              l.DatePages,
		DietOverflowPages:      l.DietOverflowPages,
		TreatmentOverflowPages: l.TreatmentOverflowPages,
		TotalPages:             l.TotalPages(),
		Pages:                  pages,
		Notices:                rowLimitNotices(len(diet), len(treatment), l.Allocation, c),
	}
}

func rowLimitNotices(diet, treatment int, a pagination.Allocation, c pagination.Capacity) []RowLimitNotice {
	out := []RowLimitNotice{}
	if diet > a.DietMax {
		out = append(out, RowLimitNotice{
			Table: TableDiet, MaxRows: a.DietMax,
			DietRows: diet, TreatmentRows: treatment, MaxTotalRows: c.TotalRows,
		})
	}
	if treatment > a.TreatmentMax {
		out = append(out, RowLimitNotice{
			Table: TableTreatment, MaxRows: a.TreatmentMax,
			DietRows: diet, TreatmentRows: treatment, MaxTotalRows: c.TotalRows,
		})
	}
	return out
}
