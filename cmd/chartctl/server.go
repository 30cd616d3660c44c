package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"time"

	"inpatient-chart/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

func (a *app) client(server string, timeout time.Duration) (*httpclient.Client, error) {
	if server == "" {
		server = a.serverURL()
	}
	return httpclient.New(server, timeout)
}

func newPingCmd(a *app) *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the chart service is up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client(server, 5*time.Second)
			if err != nil {
				return err
			}

			var resp struct {
				Status string `json:"status"`
			}
			if err := c.DoJSON(cmd.Context(), http.MethodGet, "/health", nil, &resp); err != nil {
				return err
			}
			if resp.Status != "ok" {
				return fmt.Errorf("unexpected health status %q", resp.Status)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", c.BaseURL)
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "Service URL (default from server.addr)")
	return cmd
}

func newPrintCmd(a *app) *cobra.Command {
	var (
		server   string
		url      string
		filename string
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Ask the running service for a PDF (POST /print-pdf)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// la captura corre en el servidor: darle su timeout completo
			c, err := a.client(server, a.cfg.Capture.Timeout+10*time.Second)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			name, _, err := c.Download(cmd.Context(), http.MethodPost, "/print-pdf", map[string]string{
				"url":      url,
				"filename": filename,
				"format":   format,
			}, &buf)
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = name
			}
			if out == "" {
				out = "chart.pdf"
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "PDF saved to", out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&server, "server", "", "Service URL (default from server.addr)")
	f.StringVar(&url, "url", "", "Page to print (default capture.default_url on the server)")
	f.StringVar(&filename, "filename", "", "Download filename (default chart.pdf)")
	f.StringVar(&format, "format", "", "Paper format (default A4)")
	f.StringVarP(&output, "output", "o", "", "Output path (default the filename sent by the server)")
	return cmd
}
