package cmd

import (
	"github.com/spf13/cobra"

	"passwordy/internal/infrastructure/storage"
)

var migrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Применить миграции и выйти",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := storage.Migrate(cfg.DB); err != nil {
			return err
		}
		log.Info("migrations applied", "driver", cfg.DB.Driver)
		return nil
	},
}
