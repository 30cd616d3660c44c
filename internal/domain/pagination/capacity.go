// Package pagination decide cómo se reparte una planilla de internación en hojas A4:
// ventanas de fechas, filas de dieta/tratamiento en la primera hoja y hojas de desborde.
package pagination

import (
	"errors"
	"fmt"
)

var ErrInvalidCapacity = errors.New("invalid capacity")

// Capacity es la tabla de capacidades de una hoja.
// Las distintas iteraciones del formulario usaron otros números (14 días, 5/6/7 filas);
// estos son los valores canónicos y todo es configurable.
type Capacity struct {
	// Columnas de fecha por hoja.
	DaysPerPage int `yaml:"days_per_page"`
	// Techo de filas dieta+tratamiento en cualquier hoja.
	TotalRows int `yaml:"total_rows"`

	// Máximos por tabla en la primera hoja.
	MaxDiet      int `yaml:"max_diet"`
	MaxTreatment int `yaml:"max_treatment"`

	// Filas "estables" por hoja; el desborde usa una más por tabla.
	DietRowsPerPage      int `yaml:"diet_rows_per_page"`
	TreatmentRowsPerPage int `yaml:"treatment_rows_per_page"`

	// SoftLimit permite que una tabla tome la capacidad que la otra no usa.
	SoftLimit bool `yaml:"soft_limit"`

	MinRowsPerTable int `yaml:"min_rows_per_table"`
}

// DefaultCapacity es la tabla usada por el formulario actual.
func DefaultCapacity() Capacity {
	return Capacity{
		DaysPerPage:          15,
		TotalRows:            11,
		MaxDiet:              7,
		MaxTreatment:         6,
		DietRowsPerPage:      5,
		TreatmentRowsPerPage: 4,
		SoftLimit:            true,
		MinRowsPerTable:      1,
	}
}

func (c Capacity) DietOverflowRows() int      { return c.DietRowsPerPage + 1 }
func (c Capacity) TreatmentOverflowRows() int { return c.TreatmentRowsPerPage + 1 }

// Validate asegura que el techo por hoja también se respete en las hojas de desborde.
func (c Capacity) Validate() error {
	fields := []struct {
		name string
		v    int
	}{
		{"days_per_page", c.DaysPerPage},
		{"total_rows", c.TotalRows},
		{"max_diet", c.MaxDiet},
		{"max_treatment", c.MaxTreatment},
		{"diet_rows_per_page", c.DietRowsPerPage},
		{"treatment_rows_per_page", c.TreatmentRowsPerPage},
		{"min_rows_per_table", c.MinRowsPerTable},
	}
	for _, f := range fields {
		if f.v < 1 {
			return fmt.Errorf("%w: %s must be >= 1", ErrInvalidCapacity, f.name)
		}
	}
	if 2*c.MinRowsPerTable > c.TotalRows {
		return fmt.Errorf("%w: min_rows_per_table leaves no room in total_rows", ErrInvalidCapacity)
	}
	if c.DietOverflowRows()+c.TreatmentOverflowRows() > c.TotalRows {
		return fmt.Errorf("%w: overflow pages would exceed total_rows (%d+%d > %d)",
			ErrInvalidCapacity, c.DietOverflowRows(), c.TreatmentOverflowRows(), c.TotalRows)
	}
	return nil
}
