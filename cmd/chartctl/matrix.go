package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"inpatient-chart/internal/domain/allocation"
	"inpatient-chart/internal/domain/pagination"

	"github.com/spf13/cobra"
)

func newMatrixCmd(a *app) *cobra.Command {
	var (
		total  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print every diet/treatment split of the page capacity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.capacity(total)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "text":
				fmt.Fprint(out, allocation.MatrixTable(c.TotalRows))
				return nil
			case "csv":
				return allocation.WriteCSV(out, c.TotalRows)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(allocation.Export(c, time.Now()))
			default:
				return fmt.Errorf("--format must be text, csv or json")
			}
		},
	}
	cmd.Flags().IntVar(&total, "total", 0, "Total rows per page (0 = configured capacity)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text | csv | json")
	return cmd
}

func newHeatmapCmd(a *app) *cobra.Command {
	var diet, treatment, total int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show where the current split sits in the allocation matrix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.capacity(total)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), allocation.Heatmap(diet, treatment, c.TotalRows))
			return nil
		},
	}
	cmd.Flags().IntVar(&diet, "diet", 5, "Diet rows")
	cmd.Flags().IntVar(&treatment, "treatment", 4, "Treatment rows")
	cmd.Flags().IntVar(&total, "total", 0, "Total rows per page (0 = configured capacity)")
	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	var diet, treatment, total int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Capacity report and recommendation for a diet/treatment split",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.capacity(total)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), allocation.Report(diet, treatment, c))
			return nil
		},
	}
	cmd.Flags().IntVar(&diet, "diet", 5, "Diet rows")
	cmd.Flags().IntVar(&treatment, "treatment", 4, "Treatment rows")
	cmd.Flags().IntVar(&total, "total", 0, "Total rows per page (0 = configured capacity)")
	return cmd
}

// capacity: la configurada, con otro total si se pide (mismas reglas que la API).
func (a *app) capacity(total int) (pagination.Capacity, error) {
	return allocation.NewService(a.cfg.Capacity).Capacity(total)
}
