package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/smartcontractkit/eccalc/internal/metrics"
	"github.com/smartcontractkit/eccalc/internal/runner"
)

const (
	configF      = "config"
	inputF       = "input"
	outputF      = "output"
	workersF     = "workers"
	verbosityF   = "verbosity"
	metricsF     = "metrics"
	metricsPortF = "metrics-port"

	defaultInput       = "INPUT"
	defaultOutput      = "OUTPUT"
	defaultWorkers     = 0
	defaultVerbosity   = "info"
	defaultMetrics     = false
	defaultMetricsPort = uint16(9090)

	configUsage      = "The yaml configuration file."
	inputUsage       = "Directory scanned for *.txt task files."
	outputUsage      = "Directory the result files are written to. Created if missing."
	workersUsage     = "Number of files processed concurrently. 0 uses one worker per CPU."
	verbosityUsage   = "Log level. Options: debug, info, warn, error."
	metricsUsage     = "Enables the metrics server and listens on --metrics-port."
	metricsPortUsage = "The port the metrics server listens on."
)

var Version string

func NewCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:     "eccalc [flags]",
		Short:   "Batch calculator for elliptic curve point arithmetic over Z_p and GF(2^n).",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viper.New()
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}
			// Flag > config file > default.
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			level, err := logrus.ParseLevel(v.GetString(verbosityF))
			if err != nil {
				return err
			}
			log := logrus.New()
			log.SetLevel(level)

			reg := prometheus.NewRegistry()
			set := metrics.New(reg)
			if v.GetBool(metricsF) {
				srv := &http.Server{
					Addr:    fmt.Sprintf(":%d", v.GetUint16(metricsPortF)),
					Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
				}
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						log.WithError(err).Error("metrics server stopped")
					}
				}()
				defer srv.Close()
			}

			return runner.Run(runner.Config{
				InputDir:  v.GetString(inputF),
				OutputDir: v.GetString(outputF),
				Workers:   v.GetInt(workersF),
				Log:       log,
				Metrics:   set,
			})
		},
	}

	cmd.Flags().StringVar(&cfgFile, configF, "", configUsage)
	registerFlags(cmd.Flags())
	return cmd
}

func registerFlags(f *pflag.FlagSet) {
	f.StringP(inputF, "i", defaultInput, inputUsage)
	f.StringP(outputF, "o", defaultOutput, outputUsage)
	f.Int(workersF, defaultWorkers, workersUsage)
	f.String(verbosityF, defaultVerbosity, verbosityUsage)
	f.Bool(metricsF, defaultMetrics, metricsUsage)
	f.Uint16(metricsPortF, defaultMetricsPort, metricsPortUsage)
}
