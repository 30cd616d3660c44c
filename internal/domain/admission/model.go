package admission

// Stage define el estado clínico del paciente al ingreso (opcional).
// @Enum stable, critical, observation, post_operative
type Stage string

const (
	StageStable        Stage = "stable"
	StageCritical      Stage = "critical"
	StageObservation   Stage = "observation"
	StagePostOperative Stage = "post_operative"
)

// ParseStage acepta "" (sin estado) o uno de los valores conocidos.
func ParseStage(s string) (Stage, bool) {
	switch st := Stage(s); st {
	case "", StageStable, StageCritical, StageObservation, StagePostOperative:
		return st, true
	default:
		return "", false
	}
}

// Header es el formulario de ingreso del paciente.
// Vive solo en memoria durante la sesión de edición; nunca se persiste.
type Header struct {
	FileNo        string
	PetName       string
	OwnerName     string
	Doctor        string
	AssistantName string
	CageNo        string
	Diagnosis     string

	AdmissionDate string // YYYY-MM-DD
	DischargeDate string // YYYY-MM-DD

	Weight string // opcional, kg
	Stage  Stage  // opcional
}

// Normalize aplica los formatters de cada campo, igual que el formulario al tipear.
func (h Header) Normalize() Header {
	h.FileNo = FormatFileNumber(h.FileNo)
	h.PetName = FormatName(h.PetName)
	h.OwnerName = FormatName(h.OwnerName)
	h.Doctor = FormatName(h.Doctor)
	h.AssistantName = FormatName(h.AssistantName)
	h.CageNo = FormatCageNo(h.CageNo)
	h.Diagnosis = FormatName(h.Diagnosis)
	h.Weight = FormatWeight(h.Weight)
	return h
}

// Dates devuelve las columnas de fecha derivadas del ingreso/alta.
func (h Header) Dates() []string {
	return ExpandDates(h.AdmissionDate, h.DischargeDate)
}
