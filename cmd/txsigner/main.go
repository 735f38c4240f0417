package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/erc7824/nitrolite/txsigner/pkg/log"
	"github.com/erc7824/nitrolite/txsigner/pkg/sign"
	"github.com/erc7824/nitrolite/txsigner/pkg/txsign"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the configuration every subcommand needs. The logger travels
// on the command context.
type app struct {
	config *Config

	metricsFile string
	registry    *prometheus.Registry
	metrics     *txsign.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "txsigner",
		Short: "Sign legacy Ethereum transactions and recover their signers",
		Long: `txsigner signs legacy (pre-EIP-155) transactions offline and recovers
the public key behind a signature.

The signing key is read from TXSIGNER_PRIVATE_KEY, from the environment or
from a .env file in TXSIGNER_CONFIG_DIR_PATH.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			bootLogger := log.NewZapLogger(log.Config{Format: "console", Level: log.LevelWarn, Output: "stderr"})
			config, err := LoadConfig(bootLogger)
			if err != nil {
				return err
			}
			a.config = config
			logger := log.NewZapLogger(config.Log).WithName("txsigner")
			cmd.SetContext(log.SetContextLogger(cmd.Context(), logger))

			if a.metricsFile != "" {
				a.registry = prometheus.NewRegistry()
				a.metrics = txsign.NewMetricsWithRegistry(a.registry)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "",
		"write sign and recover counters to this file in Prometheus text format")

	root.AddCommand(newSignCmd(a), newRecoverCmd(a), newDecodeCmd(a))
	for _, cmd := range root.Commands() {
		cmd.RunE = a.withMetricsFile(cmd.RunE)
	}
	return root
}

// withMetricsFile writes the counters once run returns, whether it failed
// or not.
func (a *app) withMetricsFile(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if a.registry == nil {
			return err
		}
		if werr := prometheus.WriteToTextfile(a.metricsFile, a.registry); werr != nil && err == nil {
			return fmt.Errorf("failed to write metrics: %w", werr)
		}
		return err
	}
}

// newSigner builds a Signer for the configured backend that logs through
// the logger on ctx.
func (a *app) newSigner(ctx context.Context) (*txsign.Signer, error) {
	curve, err := sign.NewCurve(sign.Backend(a.config.Backend))
	if err != nil {
		return nil, err
	}
	return txsign.NewSigner(txsign.SignerConfig{
		Curve:   curve,
		Logger:  log.FromContext(ctx),
		Metrics: a.metrics,
	}), nil
}
