package allocation

import (
	"time"

	"inpatient-chart/internal/domain/pagination"
)

type Status string

const (
	StatusFull     Status = "FULL"
	StatusCritical Status = "CRITICAL"
	StatusWarning  Status = "WARNING"
	StatusOK       Status = "OK"
)

// StatusFor clasifica las filas libres de la primera hoja. Negativo (excedido) cae en CRITICAL.
func StatusFor(remaining int) Status {
	switch {
	case remaining == 0:
		return StatusFull
	case remaining <= 1:
		return StatusCritical
	case remaining <= 3:
		return StatusWarning
	default:
		return StatusOK
	}
}

type Metrics struct {
	UtilizationPercent int `json:"utilization_percent"`
	DietPercent        int `json:"diet_percent"`
	TreatmentPercent   int `json:"treatment_percent"`
	RemainingRows      int `json:"remaining_rows"`
}

type Dashboard struct {
	Timestamp  time.Time             `json:"timestamp"`
	State      CurrentState          `json:"current_state"`
	Metrics    Metrics               `json:"metrics"`
	Status     Status                `json:"status"`
	Allocation pagination.Allocation `json:"allocation"`
	Strategies []Strategy            `json:"strategies"`
	Analysis   string                `json:"analysis"`
}

func BuildDashboard(diet, treatment int, c pagination.Capacity, now time.Time) Dashboard {
	total := c.TotalRows
	used := diet + treatment
	remaining := total - used

	return Dashboard{
		Timestamp: now.UTC(),
		State:     currentState(diet, treatment, total),
		Metrics: Metrics{
			UtilizationPercent: percent(used, total),
			DietPercent:        percent(diet, c.MaxDiet),
			TreatmentPercent:   percent(treatment, c.MaxTreatment),
			RemainingRows:      remaining,
		},
		Status:     StatusFor(remaining),
		Allocation: pagination.Allocate(diet, treatment, c),
		Strategies: Strategies(diet, treatment, c),
		Analysis:   Report(diet, treatment, c),
	}
}

// Strategy es un reparto alternativo sugerido para la primera hoja.
type Strategy struct {
	Name      string `json:"name"`
	Diet      int    `json:"diet"`
	Treatment int    `json:"treatment"`
}

func Strategies(diet, treatment int, c pagination.Capacity) []Strategy {
	total := c.TotalRows
	mid := total / 2
	return []Strategy{
		{Name: "Maximize Diet", Diet: min(c.MaxDiet, total-treatment), Treatment: treatment},
		{Name: "Maximize Treatment", Diet: diet, Treatment: min(c.MaxTreatment, total-diet)},
		{Name: "Balanced", Diet: mid, Treatment: total - mid},
	}
}
