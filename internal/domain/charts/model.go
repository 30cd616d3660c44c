package charts

import (
	"slices"
	"strings"
	"time"

	"inpatient-chart/internal/domain/admission"
)

// Table identifica una de las dos grillas de la planilla.
// @Enum diet, treatment
type Table string

const (
	TableDiet      Table = "diet"
	TableTreatment Table = "treatment"
)

func ParseTable(s string) (Table, bool) {
	switch t := Table(strings.ToLower(strings.TrimSpace(s))); t {
	case TableDiet, TableTreatment:
		return t, true
	default:
		return "", false
	}
}

// RowType indica cuántas veces por día se registra la fila.
// @Enum Once, Twice
type RowType string

const (
	RowOnce  RowType = "Once"
	RowTwice RowType = "Twice"
)

func ParseRowType(s string) (RowType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "once":
		return RowOnce, true
	case "twice":
		return RowTwice, true
	default:
		return "", false
	}
}

// Row es una línea de la tabla de dieta o de tratamiento.
// Dose solo se usa en tratamiento.
type Row struct {
	ID    int64   `json:"id"`
	Label string  `json:"label"`
	Dose  string  `json:"dose,omitempty"`
	Type  RowType `json:"type"`
}

// Counter es el próximo id de fila de la sesión. Se pasa y se devuelve explícitamente.
type Counter int64

// InitialCounter deja libres los ids de las filas semilla.
const InitialCounter Counter = 1000

// Next devuelve el id asignado y el contador avanzado.
func (c Counter) Next() (int64, Counter) {
	n := c + 1
	return int64(n), n
}

// Chart es la sesión de edición de una planilla: formulario más las dos tablas.
type Chart struct {
	ID     string
	Header admission.Header

	Diet      []Row
	Treatment []Row
	NextRowID Counter

	CreatedAt time.Time
	UpdatedAt time.Time
}

func SeedDiet() []Row {
	return []Row{
		{ID: 1, Label: "Food", Type: RowOnce},
		{ID: 2, Label: "Water", Type: RowOnce},
		{ID: 3, Label: "Urine", Type: RowOnce},
		{ID: 4, Label: "Stool", Type: RowOnce},
		{ID: 5, Label: "Vomiting", Type: RowOnce},
	}
}

func SeedTreatment() []Row {
	return []Row{
		{ID: 101, Label: "", Dose: "", Type: RowTwice},
	}
}

// NewChart arma una sesión nueva con las filas semilla y el formulario vacío.
func NewChart(id string, now time.Time) Chart {
	return Chart{
		ID:        id,
		Diet:      SeedDiet(),
		Treatment: SeedTreatment(),
		NextRowID: InitialCounter,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c Chart) Rows(t Table) []Row {
	if t == TableTreatment {
		return c.Treatment
	}
	return c.Diet
}

func (c *Chart) SetRows(t Table, rows []Row) {
	if t == TableTreatment {
		c.Treatment = rows
		return
	}
	c.Diet = rows
}

// Clone copia las tablas para que nadie comparta slices con el repositorio.
func (c Chart) Clone() Chart {
	c.Diet = slices.Clone(c.Diet)
	c.Treatment = slices.Clone(c.Treatment)
	return c
}
