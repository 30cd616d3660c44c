package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	rodcapture "inpatient-chart/internal/adapters/capture/rod"
	"inpatient-chart/internal/ports/capture"

	"github.com/spf13/cobra"
)

func newCaptureCmd(a *app) *cobra.Command {
	var (
		format  string
		bin     string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "capture <url> [output.pdf]",
		Short: "Print a page to PDF with a local headless browser",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("please provide a URL to render, e.g. http://localhost:5173")
			}
			if len(args) > 2 {
				return errors.New("too many arguments: capture <url> [output.pdf]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := "chart.pdf"
			if len(args) == 2 {
				out = args[1]
			}
			paper, err := capture.ParsePaper(format)
			if err != nil {
				return err
			}
			if bin == "" {
				bin = a.cfg.Capture.BrowserBin
			}
			if timeout <= 0 {
				timeout = a.cfg.Capture.Timeout
			}

			c := rodcapture.New(rodcapture.Config{BrowserBin: bin, Timeout: timeout}, a.log)
			pdf, err := c.Capture(cmd.Context(), capture.Request{
				URL:             args[0],
				Paper:           paper,
				Margins:         capture.UniformMargins(10),
				PrintBackground: true,
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "PDF saved to", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "A4", "Paper format (A4, Letter, Legal, ...)")
	cmd.Flags().StringVar(&bin, "bin", "", "Browser binary (default capture.browser_bin or the one rod manages)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Capture timeout (default capture.timeout)")
	return cmd
}
