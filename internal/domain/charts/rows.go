package charts

import (
	"errors"
	"slices"
	"strings"

	"inpatient-chart/internal/domain/admission"
)

var (
	ErrLastRow     = errors.New("each table must contain at least one row")
	ErrRowNotFound = errors.New("row not found")
)

// DefaultRow es la plantilla de "Add Row" / "Add Medicine".
func DefaultRow(t Table) Row {
	if t == TableTreatment {
		return Row{Type: RowTwice}
	}
	return Row{Type: RowOnce}
}

// RowPatch: nil = no tocar.
type RowPatch struct {
	Label *string
	Dose  *string
	Type  *RowType
}

// AddRow agrega tmpl al final con el próximo id del contador.
// No modifica rows; devuelve la tabla nueva, la fila creada y el contador avanzado.
func AddRow(rows []Row, next Counter, tmpl Row) ([]Row, Row, Counter) {
	id, next := next.Next()
	r := tmpl
	r.ID = id
	if r.Type == "" {
		r.Type = RowOnce
	}

	out := make([]Row, 0, len(rows)+1)
	out = append(out, rows...)
	out = append(out, r)
	return out, r, next
}

// UpdateRow aplica el patch con los mismos formatters que la grilla:
// etiqueta en formato nombre y dosis en mayúsculas.
func UpdateRow(rows []Row, id int64, patch RowPatch) ([]Row, Row, error) {
	i := slices.IndexFunc(rows, func(r Row) bool { return r.ID == id })
	if i < 0 {
		return rows, Row{}, ErrRowNotFound
	}

	out := slices.Clone(rows)
	r := out[i]
	if patch.Label != nil {
		r.Label = admission.FormatMedicine(*patch.Label)
	}
	if patch.Dose != nil {
		r.Dose = strings.ToUpper(*patch.Dose)
	}
	if patch.Type != nil {
		r.Type = *patch.Type
	}
	out[i] = r
	return out, r, nil
}

// DeleteRow nunca deja una tabla vacía.
func DeleteRow(rows []Row, id int64) ([]Row, error) {
	i := slices.IndexFunc(rows, func(r Row) bool { return r.ID == id })
	if i < 0 {
		return rows, ErrRowNotFound
	}
	if len(rows) <= 1 {
		return rows, ErrLastRow
	}

	out := make([]Row, 0, len(rows)-1)
	out = append(out, rows[:i]...)
	out = append(out, rows[i+1:]...)
	return out, nil
}
