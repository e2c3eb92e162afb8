package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/colombiamoda/internal/config"
	"github.com/colombiamoda/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:          "colombiamoda",
		Short:        "Colombiamoda landing page server",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log := logger.Setup(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			log.Debug("logger configured", "level", cfg.LogLevel, "format", cfg.LogFormat)
		},
	}

	serve := newServeCmd(&cfg)
	cmd.AddCommand(serve, newExportCmd(&cfg))
	cmd.RunE = serve.RunE

	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	return cmd
}
