package allocation

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"
	"time"

	"inpatient-chart/internal/domain/pagination"
)

var csvHeader = []string{"Row", "Diet", "Treatment", "Total", "Dominance", "Capacity Used", "Capacity Remaining"}

func WriteCSV(w io.Writer, total int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range Combinations(total) {
		rec := []string{
			strconv.Itoa(c.Row),
			strconv.Itoa(c.Diet),
			strconv.Itoa(c.Treatment),
			strconv.Itoa(c.Total),
			string(c.Dominance),
			strconv.Itoa(c.CapacityUsed),
			strconv.Itoa(c.CapacityRemaining),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type ExportMetadata struct {
	Timestamp         time.Time `json:"timestamp"`
	TotalCapacity     int       `json:"total_capacity"`
	TotalCombinations int       `json:"total_combinations"`
	MinDiet           int       `json:"min_diet"`
	MaxDiet           int       `json:"max_diet"`
	MinTreatment      int       `json:"min_treatment"`
	MaxTreatment      int       `json:"max_treatment"`
}

type Constraints struct {
	Total                  int `json:"total"`
	MaxIndividualDiet      int `json:"max_individual_diet"`
	MaxIndividualTreatment int `json:"max_individual_treatment"`
	MinRowsPerTable        int `json:"min_rows_per_table"`
}

// Document es la exportación JSON completa de la matriz.
type Document struct {
	Metadata     ExportMetadata `json:"metadata"`
	Combinations []Combination  `json:"combinations"`
	Constraints  Constraints    `json:"constraints"`
}

func Export(c pagination.Capacity, now time.Time) Document {
	total := c.TotalRows
	combos := Combinations(total)
	return Document{
		Metadata: ExportMetadata{
			Timestamp:         now.UTC(),
			TotalCapacity:     total,
			TotalCombinations: len(combos),
			MinDiet:           1,
			MaxDiet:           max(total-1, 0),
			MinTreatment:      1,
			MaxTreatment:      max(total-1, 0),
		},
		Combinations: combos,
		Constraints:  constraintsOf(c),
	}
}

func constraintsOf(c pagination.Capacity) Constraints {
	return Constraints{
		Total:                  c.TotalRows,
		MaxIndividualDiet:      c.MaxDiet,
		MaxIndividualTreatment: c.MaxTreatment,
		MinRowsPerTable:        c.MinRowsPerTable,
	}
}

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Width string `json:"width"`
}

var tableColumns = []Column{
	{Key: "row", Label: "Row #", Width: "10%"},
	{Key: "diet", Label: "Diet (D)", Width: "20%"},
	{Key: "treatment", Label: "Treatment (T)", Width: "20%"},
	{Key: "total", Label: "Total (TT)", Width: "20%"},
	{Key: "dominance", Label: "Dominance", Width: "20%"},
	{Key: "utilization", Label: "Utilization %", Width: "10%"},
}

type TableMetadata struct {
	Timestamp       time.Time `json:"timestamp"`
	TotalCapacity   int       `json:"total_capacity"`
	TotalRows       int       `json:"total_rows"`
	DominanceFilter string    `json:"dominance_filter"`
	SortOrder       SortOrder `json:"sort_order"`
}

// Table son los datos de la matriz listos para una tabla de UI.
type Table struct {
	Metadata TableMetadata `json:"metadata"`
	Columns  []Column      `json:"columns"`
	Rows     []Combination `json:"rows"`
}

// Structured filtra por dominancia ("" = todas) y ordena por D.
func Structured(total int, filter Dominance, order SortOrder, now time.Time) Table {
	rows := []Combination{}
	for _, c := range Combinations(total) {
		if filter != "" && c.Dominance != filter {
			continue
		}
		rows = append(rows, c)
	}
	if order == Desc {
		slices.Reverse(rows)
	} else {
		order = Asc
	}

	label := string(filter)
	if label == "" {
		label = "all"
	}

	return Table{
		Metadata: TableMetadata{
			Timestamp:       now.UTC(),
			TotalCapacity:   total,
			TotalRows:       len(rows),
			DominanceFilter: label,
			SortOrder:       order,
		},
		Columns: tableColumns,
		Rows:    rows,
	}
}

type ComplementaryTables struct {
	TotalCapacity     int   `json:"total_capacity"`
	DietDominant      Table `json:"diet_dominant"`
	TreatmentDominant Table `json:"treatment_dominant"`
	All               Table `json:"all_combinations"`
}

func Complementary(total int, now time.Time) ComplementaryTables {
	return ComplementaryTables{
		TotalCapacity:     total,
		DietDominant:      Structured(total, DietDominant, Asc, now),
		TreatmentDominant: Structured(total, TreatmentDominant, Asc, now),
		All:               Structured(total, "", Asc, now),
	}
}

type CurrentState struct {
	Diet               int `json:"diet"`
	Treatment          int `json:"treatment"`
	Total              int `json:"total"`
	Capacity           int `json:"capacity"`
	UtilizationPercent int `json:"utilization_percent"`
}

func currentState(diet, treatment, total int) CurrentState {
	return CurrentState{
		Diet:               diet,
		Treatment:          treatment,
		Total:              diet + treatment,
		Capacity:           total,
		UtilizationPercent: percent(diet+treatment, total),
	}
}

type ValidSet struct {
	TotalValid int           `json:"total_valid"`
	Rows       []Combination `json:"rows"`
}

type PageLayoutHint struct {
	MaxDietRows      int    `json:"max_diet_rows"`
	MaxTreatmentRows int    `json:"max_treatment_rows"`
	TotalCapacity    int    `json:"total_capacity"`
	Recommendation   string `json:"recommendation"`
}

// DefaultAllocation es la tabla para el estado actual (por defecto la semilla D=5, T=1).
type DefaultAllocation struct {
	Timestamp  time.Time      `json:"timestamp"`
	PageSize   string         `json:"page_size"`
	State      CurrentState   `json:"default_state"`
	All        Table          `json:"all_possible_allocations"`
	Valid      ValidSet       `json:"valid_allocations_for_current_state"`
	PageLayout PageLayoutHint `json:"page_layout"`
}

func DefaultTable(diet, treatment int, c pagination.Capacity, now time.Time) DefaultAllocation {
	total := c.TotalRows
	all := Structured(total, "", Asc, now)
	ok := valid(total, diet, treatment)

	upDiet, upTreat := c.MaxDiet, c.MaxTreatment
	if len(ok) > 0 {
		upDiet, upTreat = ok[0].Diet, ok[0].Treatment
	}

	return DefaultAllocation{
		Timestamp: now.UTC(),
		PageSize:  "A4",
		State:     currentState(diet, treatment, total),
		All:       all,
		Valid:     ValidSet{TotalValid: len(ok), Rows: ok},
		PageLayout: PageLayoutHint{
			MaxDietRows:      c.MaxDiet,
			MaxTreatmentRows: c.MaxTreatment,
			TotalCapacity:    total,
			Recommendation: "Current: D=" + strconv.Itoa(diet) + ", T=" + strconv.Itoa(treatment) +
				". Can allocate up to " + strconv.Itoa(upDiet) + " diet rows and " +
				strconv.Itoa(upTreat) + " treatment rows.",
		},
	}
}

type PagedTablePage struct {
	PageNumber     int           `json:"page_number"`
	TotalPages     int           `json:"total_pages"`
	RowsInPage     int           `json:"rows_in_page"`
	Rows           []Combination `json:"rows"`
	IsFirstPage    bool          `json:"is_first_page"`
	IsLastPage     bool          `json:"is_last_page"`
	PageBreakAfter bool          `json:"page_break_after"`
	Format         string        `json:"format"`
	Orientation    string        `json:"orientation"`
}

type PagedTable struct {
	TotalCapacity int              `json:"total_capacity"`
	TotalRows     int              `json:"total_rows"`
	RowsPerPage   int              `json:"rows_per_page"`
	TotalPages    int              `json:"total_pages"`
	Pages         []PagedTablePage `json:"pages"`
}

// DefaultRowsPerPage es el corte de la matriz impresa en A4.
const DefaultRowsPerPage = 10

// A4Paged parte la matriz en hojas A4 verticales de rowsPerPage filas.
func A4Paged(total, rowsPerPage int) PagedTable {
	if rowsPerPage < 1 {
		rowsPerPage = DefaultRowsPerPage
	}
	all := Combinations(total)
	totalPages := (len(all) + rowsPerPage - 1) / rowsPerPage

	pages := make([]PagedTablePage, 0, totalPages)
	for p := 0; p < totalPages; p++ {
		start := p * rowsPerPage
		end := min(start+rowsPerPage, len(all))
		pages = append(pages, PagedTablePage{
			PageNumber:     p + 1,
			TotalPages:     totalPages,
			RowsInPage:     end - start,
			Rows:           all[start:end:end],
			IsFirstPage:    p == 0,
			IsLastPage:     p == totalPages-1,
			PageBreakAfter: p < totalPages-1,
			Format:         "A4",
			Orientation:    "portrait",
		})
	}

	return PagedTable{
		TotalCapacity: total,
		TotalRows:     len(all),
		RowsPerPage:   rowsPerPage,
		TotalPages:    totalPages,
		Pages:         pages,
	}
}

type PrintableSummary struct {
	TotalCombinations      int    `json:"total_combinations"`
	DietDominantCount      int    `json:"diet_dominant_count"`
	TreatmentDominantCount int    `json:"treatment_dominant_count"`
	Recommendation         string `json:"recommendation"`
}

// PrintableTable junta todas las vistas de la matriz en un único documento.
type PrintableTable struct {
	Title             string           `json:"title"`
	Date              time.Time        `json:"date"`
	PageFormat        string           `json:"page_format"`
	Current           CurrentState     `json:"current_allocation"`
	All               Table            `json:"all_valid_combinations"`
	DietDominant      Table            `json:"diet_dominant_table"`
	TreatmentDominant Table            `json:"treatment_dominant_table"`
	Paged             PagedTable       `json:"paged_layout"`
	Summary           PrintableSummary `json:"summary"`
}

func Printable(diet, treatment int, c pagination.Capacity, now time.Time) PrintableTable {
	total := c.TotalRows
	comp := Complementary(total, now)

	return PrintableTable{
		Title:             "Dynamic Row Allocation Table",
		Date:              now.UTC(),
		PageFormat:        "A4",
		Current:           currentState(diet, treatment, total),
		All:               comp.All,
		DietDominant:      comp.DietDominant,
		TreatmentDominant: comp.TreatmentDominant,
		Paged:             A4Paged(total, DefaultRowsPerPage),
		Summary: PrintableSummary{
			TotalCombinations:      len(comp.All.Rows),
			DietDominantCount:      len(comp.DietDominant.Rows),
			TreatmentDominantCount: len(comp.TreatmentDominant.Rows),
			Recommendation:         Report(diet, treatment, c),
		},
	}
}
