package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/phonecustody/internal/config"
	"github.com/deppfellow/phonecustody/internal/logger"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "custody",
		Short:         "Phone custody tracking service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newEmailPreviewCommand(),
	)

	return root
}

// bootstrap loads the configuration and builds the application logger.
// The caller owns the returned LoggerService and must Shutdown it.
func bootstrap() (*config.Config, *zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, &log, loggerService, nil
}
