package pagination

// PageKind distingue hojas de fechas (filas de la primera hoja) de hojas de desborde.
type PageKind string

const (
	PageKindDates    PageKind = "dates"
	PageKindOverflow PageKind = "overflow"
)

// Page describe el contenido de una hoja impresa.
type Page[R any] struct {
	Index int
	Kind  PageKind

	Dates     []string
	Diet      []R
	Treatment []R

	IsFirst bool
	IsLast  bool
}

// Layout es el resultado completo de paginar una planilla.
type Layout[R any] struct {
	Pages      []Page[R]
	Allocation Allocation

	DatePages              int
	DietOverflowPages      int
	TreatmentOverflowPages int

	// Empty: no hay columnas de fecha; la UI muestra el placeholder de instrucciones.
	Empty bool
}

func (l Layout[R]) TotalPages() int { return len(l.Pages) }

// Paginate es una función pura: no modifica dates, diet ni treatment.
//
// Las hojas [0, datePages) muestran cada ventana de fechas con las filas de la primera hoja.
// Las hojas siguientes son de desborde: repiten la última ventana de fechas y llevan el
// bloque k de dieta y el bloque k de tratamiento (emparejados por índice); una tabla sin
// filas en ese bloque no aparece en la hoja.
func Paginate[R any](dates []string, diet, treatment []R, c Capacity) Layout[R] {
	perPage := max(1, c.DaysPerPage)
	datePages := max(1, ceilDiv(len(dates), perPage))

	alloc := Allocate(len(diet), len(treatment), c)
	dietFirst := min(len(diet), alloc.DietMax)
	treatFirst := min(len(treatment), alloc.TreatmentMax)

	dietChunks := chunk(diet[dietFirst:], c.DietOverflowRows())
	treatChunks := chunk(treatment[treatFirst:], c.TreatmentOverflowRows())
	overflowPages := max(len(dietChunks), len(treatChunks))

	total := datePages + overflowPages
	pages := make([]Page[R], 0, total)

	for p := 0; p < total; p++ {
		page := Page[R]{
			Index:   p,
			IsFirst: p == 0,
			IsLast:  p == total-1,
		}

		if p < datePages {
			page.Kind = PageKindDates
			page.Dates = window(dates, p, perPage)
			page.Diet = diet[:dietFirst:dietFirst]
			page.Treatment = treatment[:treatFirst:treatFirst]
		} else {
			k := p - datePages
			page.Kind = PageKindOverflow
			page.Dates = window(dates, datePages-1, perPage)
			page.Diet = chunkAt(dietChunks, k)
			page.Treatment = chunkAt(treatChunks, k)
		}

		pages = append(pages, page)
	}

	return Layout[R]{
		Pages:                  pages,
		Allocation:             alloc,
		DatePages:              datePages,
		DietOverflowPages:      len(dietChunks),
		TreatmentOverflowPages: len(treatChunks),
		Empty:                  len(dates) == 0,
	}
}

func window(dates []string, i, size int) []string {
	start := i * size
	if start >= len(dates) {
		return []string{}
	}
	end := min(start+size, len(dates))
	return dates[start:end:end]
}

func chunk[R any](items []R, size int) [][]R {
	size = max(1, size)
	out := make([][]R, 0, ceilDiv(len(items), size))
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end:end])
	}
	return out
}

func chunkAt[R any](chunks [][]R, k int) []R {
	if k < len(chunks) {
		return chunks[k]
	}
	return []R{}
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
