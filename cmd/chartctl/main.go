// chartctl: herramientas de línea de comando para la planilla de internación.
package main

import (
	"fmt"
	"os"
	"strings"

	"inpatient-chart/internal/platform/config"
	"inpatient-chart/internal/platform/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const appVersion = "1.0.0"

type app struct {
	configPath string
	cfg        *config.Config
	log        logger.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "chartctl",
		Short:         "In-patient chart tools: pagination preview, allocation matrix, PDF capture",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env es opcional
			_ = godotenv.Load()

			cfg, err := config.FromEnv(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			opts := cfg.LoggerOptions()
			opts.Output = cmd.ErrOrStderr()
			a.log = logger.New(opts)
			return nil
		},
	}
	root.SetVersionTemplate("chartctl v{{.Version}}\n")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $CHART_CONFIG)")

	root.AddCommand(
		newPaginateCmd(a),
		newMatrixCmd(a),
		newHeatmapCmd(a),
		newReportCmd(a),
		newCaptureCmd(a),
		newPingCmd(a),
		newPrintCmd(a),
		newConfigCmd(a),
	)
	return root
}

// serverURL deriva la URL local del servicio desde server.addr (":8080" -> http://localhost:8080).
func (a *app) serverURL() string {
	addr := strings.TrimSpace(a.cfg.Server.Addr)
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
