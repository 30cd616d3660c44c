package pagination

import "strings"

// RenderMode hace explícito si la capa de presentación dibuja para pantalla o para impresión.
type RenderMode string

const (
	ModeScreen RenderMode = "screen"
	ModePrint  RenderMode = "print"
)

// ParseMode: vacío = print.
func ParseMode(s string) (RenderMode, bool) {
	switch RenderMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModePrint:
		return ModePrint, true
	case ModeScreen:
		return ModeScreen, true
	default:
		return "", false
	}
}

// Furniture indica qué bloques fijos lleva una hoja además de las tablas.
type Furniture struct {
	Letterhead    bool `json:"letterhead"` // membrete de la clínica
	Footer        bool `json:"footer"`     // dirección/contacto
	Watermark     bool `json:"watermark"`
	AdmissionForm bool `json:"admission_form"`
	Signature     bool `json:"signature"`    // firmas de doctor y dueño
	AddButtons    bool `json:"add_buttons"`  // "Add Row" / "Add Medicine"
	RowControls   bool `json:"row_controls"` // editar/eliminar filas
	Copyright     bool `json:"copyright"`
	ReadOnly      bool `json:"read_only"`
}

// FurnitureFor: en impresión, formulario y firmas solo en la primera hoja;
// membrete y pie en todas. En pantalla nada de eso, y los botones de alta solo en la primera.
func FurnitureFor(isFirst, isLast bool, mode RenderMode) Furniture {
	if mode == ModeScreen {
		return Furniture{
			AddButtons:  isFirst,
			RowControls: true,
		}
	}
	return Furniture{
		Letterhead:    true,
		Footer:        true,
		Watermark:     true,
		AdmissionForm: isFirst,
		Signature:     isFirst,
		Copyright:     isLast,
		ReadOnly:      true,
	}
}

func (p Page[R]) Furniture(mode RenderMode) Furniture {
	return FurnitureFor(p.IsFirst, p.IsLast, mode)
}
