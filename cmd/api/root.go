package main

import (
	"pet-shelter-hub/internal/platform/config"
	"pet-shelter-hub/internal/platform/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envDir string

	root := &cobra.Command{
		Use:           "pet-shelter-hub",
		Short:         "Hub de refugios y mascotas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envDir, "env-dir", ".", "directorio donde buscar .env")

	root.AddCommand(newServeCmd(&envDir))
	root.AddCommand(newMigrateCmd(&envDir))
	return root
}

// bootstrap carga config y logger; lo comparten todos los subcomandos.
func bootstrap(envDir string) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(envDir)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log.Options())
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
