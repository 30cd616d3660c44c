package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"inpatient-chart/internal/domain/admission"
	"inpatient-chart/internal/domain/charts"
	"inpatient-chart/internal/domain/pagination"

	"github.com/spf13/cobra"
)

func newPaginateCmd(a *app) *cobra.Command {
	var (
		h         admission.Header
		dietRows  int
		treatRows int
		mode      string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "paginate",
		Short: "Preview the A4 pagination of a chart",
		Example: "  chartctl paginate --admission 2024-01-01 --discharge 2024-01-20 --diet 7 --treatment 6\n" +
			"  chartctl paginate --admission 2024-01-01 --discharge 2024-01-05 --mode screen --json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, ok := pagination.ParseMode(mode)
			if !ok {
				return fmt.Errorf("--mode must be screen or print")
			}
			if dietRows < 1 || treatRows < 1 {
				return fmt.Errorf("--diet and --treatment must be >= 1")
			}

			h = h.Normalize()
			if err := admission.ValidateDates(h, a.cfg.Sessions.MaxStayDays); err != nil {
				return err
			}

			next := charts.InitialCounter
			diet, next := sampleRows(charts.SeedDiet(), dietRows, charts.TableDiet, next)
			treatment, _ := sampleRows(charts.SeedTreatment(), treatRows, charts.TableTreatment, next)

			v := charts.BuildLayout(h, diet, treatment, a.cfg.Capacity, m)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}
			printLayout(cmd.OutOrStdout(), v)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&h.AdmissionDate, "admission", "", "Admission date YYYY-MM-DD")
	f.StringVar(&h.DischargeDate, "discharge", "", "Discharge date YYYY-MM-DD")
	f.StringVar(&h.FileNo, "file-no", "", "File number")
	f.StringVar(&h.PetName, "pet", "", "Pet name")
	f.IntVar(&dietRows, "diet", 5, "Diet rows")
	f.IntVar(&treatRows, "treatment", 1, "Treatment rows")
	f.StringVar(&mode, "mode", "print", "Render mode: print | screen")
	f.BoolVar(&asJSON, "json", false, "Print the full layout as JSON")
	return cmd
}

// sampleRows recorta o completa las filas semilla hasta n.
func sampleRows(seed []charts.Row, n int, t charts.Table, next charts.Counter) ([]charts.Row, charts.Counter) {
	if n <= len(seed) {
		return seed[:n], next
	}
	rows := seed
	for len(rows) < n {
		tmpl := charts.DefaultRow(t)
		tmpl.Label = fmt.Sprintf("Row %d", len(rows)+1)
		rows, _, next = charts.AddRow(rows, next, tmpl)
	}
	return rows, next
}

func printLayout(w io.Writer, v charts.LayoutView) {
	fmt.Fprintf(w, "%s\n", v.Title)
	fmt.Fprintf(w, "Days: %d  Allocation: diet %d / treatment %d\n", v.TotalDays, v.Allocation.DietMax, v.Allocation.TreatmentMax)
	fmt.Fprintf(w, "Pages: %d (dates %d, diet overflow %d, treatment overflow %d)\n\n",
		v.TotalPages, v.DatePages, v.DietOverflowPages, v.TreatmentOverflowPages)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAGE\tKIND\tDATES\tDIET\tTREATMENT\tFURNITURE")
	for _, p := range v.Pages {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n",
			p.Number, p.Kind, dateSpan(p.Dates), len(p.Diet), len(p.Treatment), furnitureList(p.Furniture))
	}
	_ = tw.Flush()

	if len(v.MissingFields) > 0 {
		fmt.Fprintf(w, "\nPrint disabled, missing: %s\n", strings.Join(v.MissingFields, ", "))
	}
	for _, n := range v.Notices {
		fmt.Fprintf(w, "Note: %s table exceeds %d rows on page 1 (diet %d + treatment %d of %d); the rest continues on overflow pages\n",
			n.Table, n.MaxRows, n.DietRows, n.TreatmentRows, n.MaxTotalRows)
	}
}

func dateSpan(dates []string) string {
	switch len(dates) {
	case 0:
		return "-"
	case 1:
		return dates[0]
	}
	return dates[0] + ".." + dates[len(dates)-1]
}

func furnitureList(f pagination.Furniture) string {
	var out []string
	add := func(on bool, name string) {
		if on {
			out = append(out, name)
		}
	}
	add(f.Letterhead, "letterhead")
	add(f.AdmissionForm, "form")
	add(f.Signature, "signature")
	add(f.Watermark, "watermark")
	add(f.Footer, "footer")
	add(f.Copyright, "copyright")
	add(f.AddButtons, "add-buttons")
	add(f.RowControls, "row-controls")
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}
