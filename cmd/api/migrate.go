package main

import (
	pg "pet-shelter-hub/internal/adapters/storage/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd(envDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea las tablas del journal de favoritos en Postgres",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(*envDir)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := openDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("migrations applied", nil)
			return nil
		},
	}
}
