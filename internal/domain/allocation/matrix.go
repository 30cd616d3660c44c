// Package allocation enumera los repartos D+T=TT de la capacidad de filas de una hoja
// y los exporta como texto, CSV o JSON. Es solo diagnóstico: la paginación no depende de él.
package allocation

import (
	"math"
	"slices"
	"strings"
)

type Dominance string

const (
	DietDominant      Dominance = "D > T"
	TreatmentDominant Dominance = "T > D"
	Balanced          Dominance = "D = T"
)

// ParseDominance acepta "D>T", "d > t", "diet", etc. Vacío o "all" = sin filtro ("").
func ParseDominance(s string) (Dominance, bool) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) {
	case "", "all":
		return "", true
	case "d>t", "diet":
		return DietDominant, true
	case "t>d", "treatment":
		return TreatmentDominant, true
	case "d=t", "balanced", "equal":
		return Balanced, true
	default:
		return "", false
	}
}

func Classify(diet, treatment int) Dominance {
	switch {
	case diet > treatment:
		return DietDominant
	case treatment > diet:
		return TreatmentDominant
	default:
		return Balanced
	}
}

// Combination es un reparto posible de la capacidad total.
type Combination struct {
	Row               int       `json:"row"`
	Diet              int       `json:"diet"`
	Treatment         int       `json:"treatment"`
	Total             int       `json:"total"`
	Dominance         Dominance `json:"dominance"`
	CapacityUsed      int       `json:"capacity_used"`
	CapacityRemaining int       `json:"capacity_remaining"`
	Utilization       int       `json:"utilization"`
}

// Fits: el reparto alcanza para las filas actuales.
func (c Combination) Fits(diet, treatment int) bool {
	return c.Diet >= diet && c.Treatment >= treatment
}

// Combinations devuelve los total-1 repartos con al menos una fila por tabla, D ascendente.
func Combinations(total int) []Combination {
	if total < 2 {
		return []Combination{}
	}
	out := make([]Combination, 0, total-1)
	for d := 1; d <= total-1; d++ {
		t := total - d
		out = append(out, Combination{
			Row:               d,
			Diet:              d,
			Treatment:         t,
			Total:             total,
			Dominance:         Classify(d, t),
			CapacityUsed:      d + t,
			CapacityRemaining: total - (d + t),
			Utilization:       percent(d+t, total),
		})
	}
	return out
}

func valid(total, diet, treatment int) []Combination {
	out := []Combination{}
	for _, c := range Combinations(total) {
		if c.Fits(diet, treatment) {
			out = append(out, c)
		}
	}
	return out
}

type Stats struct {
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
}

type DominanceCounts struct {
	DietDominant      int `json:"diet_dominant"`
	TreatmentDominant int `json:"treatment_dominant"`
	Equal             int `json:"equal"`
}

type Statistics struct {
	TotalCombinations int             `json:"total_combinations"`
	Diet              Stats           `json:"diet"`
	Treatment         Stats           `json:"treatment"`
	Dominance         DominanceCounts `json:"dominance"`
}

func ComputeStatistics(total int) Statistics {
	combos := Combinations(total)
	diet := make([]int, 0, len(combos))
	treat := make([]int, 0, len(combos))

	var counts DominanceCounts
	for _, c := range combos {
		diet = append(diet, c.Diet)
		treat = append(treat, c.Treatment)
		switch c.Dominance {
		case DietDominant:
			counts.DietDominant++
		case TreatmentDominant:
			counts.TreatmentDominant++
		default:
			counts.Equal++
		}
	}

	return Statistics{
		TotalCombinations: len(combos),
		Diet:              stats(diet),
		Treatment:         stats(treat),
		Dominance:         counts,
	}
}

func stats(values []int) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	sum := 0
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	median := float64(sorted[n/2])
	if n%2 == 0 {
		median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	return Stats{
		Min:     sorted[0],
		Max:     sorted[n-1],
		Average: round2(float64(sum) / float64(n)),
		Median:  round2(median),
	}
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
