package admission

import "strings"

// RequiredFields son los campos obligatorios para habilitar la impresión.
var RequiredFields = []string{
	"file_no",
	"pet_name",
	"owner_name",
	"doctor",
	"assistant_name",
	"cage_no",
	"diagnosis",
	"admission_date",
	"discharge_date",
}

func (h Header) required() []string {
	return []string{
		h.FileNo,
		h.PetName,
		h.OwnerName,
		h.Doctor,
		h.AssistantName,
		h.CageNo,
		h.Diagnosis,
		h.AdmissionDate,
		h.DischargeDate,
	}
}

// IsComplete es true solo si los nueve campos obligatorios tienen contenido (trim).
func IsComplete(h Header) bool {
	return len(MissingFields(h)) == 0
}

// MissingFields lista (en orden del formulario) los obligatorios vacíos.
func MissingFields(h Header) []string {
	out := make([]string, 0)
	for i, v := range h.required() {
		if strings.TrimSpace(v) == "" {
			out = append(out, RequiredFields[i])
		}
	}
	return out
}
