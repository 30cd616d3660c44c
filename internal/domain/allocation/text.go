package allocation

import (
	"fmt"
	"strings"

	"inpatient-chart/internal/domain/pagination"
)

// MatrixTable dibuja todos los repartos como tabla de texto con bordes.
func MatrixTable(total int) string {
	combos := Combinations(total)

	const inner = 37 // 4+5+5+4+15 más los 4 separadores

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("╔════╦═════╦═════╦════╦═══════════════╗\n")
	fmt.Fprintf(&b, "║%-*s║\n", inner, fmt.Sprintf("  ROW ALLOCATION MATRIX (D + T = %d)", total))
	b.WriteString("╠════╦═════╦═════╦════╦═══════════════╣\n")
	b.WriteString("║Row ║ D   ║ T   ║ TT ║  Dominance    ║\n")
	b.WriteString("╠════╬═════╬═════╬════╬═══════════════╣\n")
	for i, c := range combos {
		fmt.Fprintf(&b, "║ %-2d ║ %2d  ║ %2d  ║ %2d ║ %-13s ║\n", i+1, c.Diet, c.Treatment, c.Total, c.Dominance)
	}
	b.WriteString("╚════╩═════╩═════╩════╩═══════════════╝\n")
	fmt.Fprintf(&b, "Total Valid Combinations: %d\n\n", len(combos))
	return b.String()
}

// Heatmap marca sobre la diagonal D+T=total qué repartos admiten las filas actuales.
// Filas = T (de mayor a menor), columnas = D.
func Heatmap(diet, treatment, total int) string {
	n := max(total-1, 0)
	width := 5 + 4*n

	line := func(left, fill, right string) string {
		return left + strings.Repeat(fill, width) + right + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(line("╔", "═", "╗"))
	fmt.Fprintf(&b, "║%-*s║\n", width, "  ALLOCATION HEATMAP")
	fmt.Fprintf(&b, "║%-*s║\n", width, "  (✓ = Valid, ✗ = Invalid, • = Current)")
	b.WriteString(line("╠", "═", "╣"))

	b.WriteString("║  T │")
	for d := 1; d <= n; d++ {
		fmt.Fprintf(&b, "%3d ", d)
	}
	b.WriteString("║\n")
	b.WriteString("║────┼" + strings.Repeat("─", 4*n) + "║\n")

	for t := n; t >= 1; t-- {
		fmt.Fprintf(&b, "║ %2d │", t)
		for d := 1; d <= n; d++ {
			fmt.Fprintf(&b, " %s  ", heatSymbol(d, t, diet, treatment, total))
		}
		b.WriteString("║\n")
	}

	b.WriteString(line("╚", "═", "╝"))
	fmt.Fprintf(&b, "Legend: • = Current (D=%d, T=%d)\n", diet, treatment)
	b.WriteString("        ✓ = Valid allocation\n")
	b.WriteString("        ✗ = Cannot accommodate current count\n\n")
	return b.String()
}

func heatSymbol(d, t, diet, treatment, total int) string {
	switch {
	case d+t != total:
		return " "
	case d == diet && t == treatment:
		return "•"
	case d >= diet && t >= treatment:
		return "✓"
	default:
		return "✗"
	}
}

// Report es el análisis en texto del estado actual con la recomendación correspondiente.
func Report(diet, treatment int, c pagination.Capacity) string {
	total := c.TotalRows
	used := diet + treatment
	remaining := total - used
	options := valid(total, diet, treatment)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("┌─────────────────────────────────────────────┐\n")
	b.WriteString("│     ALLOCATION ANALYSIS REPORT              │\n")
	b.WriteString("└─────────────────────────────────────────────┘\n\n")

	b.WriteString("CURRENT STATE:\n")
	fmt.Fprintf(&b, "   Diet Rows:       %d\n", diet)
	fmt.Fprintf(&b, "   Treatment Rows:  %d\n", treatment)
	fmt.Fprintf(&b, "   Total Used:      %d / %d\n", used, total)
	fmt.Fprintf(&b, "   Remaining:       %d rows\n", remaining)
	fmt.Fprintf(&b, "   Utilization:     %d%%\n\n", percent(used, total))

	b.WriteString("VALID ALLOCATIONS (can accommodate current count):\n")
	fmt.Fprintf(&b, "   Total Valid Combinations: %d\n", len(options))
	if len(options) > 0 {
		b.WriteString("   Options:\n")
		for _, o := range options[:min(5, len(options))] {
			fmt.Fprintf(&b, "      • D=%d, T=%d (%s)\n", o.Diet, o.Treatment, o.Dominance)
		}
		if len(options) > 5 {
			fmt.Fprintf(&b, "      ... and %d more\n", len(options)-5)
		}
	}
	b.WriteString("\n")

	b.WriteString("RECOMMENDATIONS:\n")
	b.WriteString(recommendation(len(options), remaining))
	b.WriteString("\n")

	b.WriteString("ALLOCATION METRICS:\n")
	fmt.Fprintf(&b, "   Diet Utilization:       %d%% (%d/%d)\n", percent(diet, c.MaxDiet), diet, c.MaxDiet)
	fmt.Fprintf(&b, "   Treatment Utilization:  %d%% (%d/%d)\n", percent(treatment, c.MaxTreatment), treatment, c.MaxTreatment)
	fmt.Fprintf(&b, "   Overall Utilization:    %d%% (%d/%d)\n\n", percent(used, total), used, total)
	return b.String()
}

func recommendation(validCount, remaining int) string {
	switch {
	case validCount == 0:
		return "   OVER CAPACITY! Cannot allocate on single page.\n" +
			"      Action: Move rows to overflow page.\n"
	case remaining <= 1:
		return "   CRITICAL: Only 1 row remaining.\n" +
			"      Action: Begin overflow page or reduce rows.\n"
	case remaining <= 3:
		return fmt.Sprintf("   LIMITED SPACE: %d rows available.\n", remaining) +
			"      Action: Consider overflow pages soon.\n"
	default:
		return fmt.Sprintf("   GOOD SPACE: %d rows available.\n", remaining) +
			"      Action: Can add more rows safely.\n"
	}
}
