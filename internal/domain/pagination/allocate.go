package pagination

// Allocation es el máximo de filas de cada tabla en la primera hoja (y en cada hoja de fechas).
type Allocation struct {
	DietMax      int `json:"diet_max"`
	TreatmentMax int `json:"treatment_max"`
}

func (a Allocation) Total() int { return a.DietMax + a.TreatmentMax }

// Allocate reparte TotalRows entre dieta y tratamiento.
//
//  1. La demanda de cada tabla se acota a [MinRowsPerTable, TotalRows-MinRowsPerTable].
//  2. Cada tabla toma min(demanda, su máximo). Si se pasa del total se recorta la mayor
//     (en empate se recorta tratamiento).
//  3. Con SoftLimit, la capacidad libre extiende primero dieta y luego tratamiento hasta su demanda.
//  4. Lo que sobra se da como margen hasta MaxDiet y luego MaxTreatment.
//
// Asume una Capacity válida (ver Validate).
func Allocate(dietCount, treatmentCount int, c Capacity) Allocation {
	total := c.TotalRows
	minRows := c.MinRowsPerTable

	wantDiet := clamp(dietCount, minRows, total-minRows)
	wantTreat := clamp(treatmentCount, minRows, total-minRows)

	d := max(min(wantDiet, c.MaxDiet), minRows)
	t := max(min(wantTreat, c.MaxTreatment), minRows)

	for d+t > total && d+t > 0 {
		if d > t {
			d--
		} else {
			t--
		}
	}

	spare := total - d - t

	if c.SoftLimit {
		d, spare = grow(d, wantDiet, spare)
		t, spare = grow(t, wantTreat, spare)
	}

	d, spare = grow(d, c.MaxDiet, spare)
	t, _ = grow(t, c.MaxTreatment, spare)

	return Allocation{DietMax: d, TreatmentMax: t}
}

// grow sube v hacia limit usando spare; devuelve el nuevo valor y lo que sobra.
func grow(v, limit, spare int) (int, int) {
	if spare <= 0 || v >= limit {
		return v, spare
	}
	n := min(spare, limit-v)
	return v + n, spare - n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
