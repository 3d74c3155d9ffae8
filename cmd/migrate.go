package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"trial-shop/config"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply action log database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if !cfg.DatabaseConfigured() {
				return errors.New("no database configured: set DATABASE_URL or DB_HOST")
			}
			return config.RunMigrations(cfg, logger)
		},
	}
}
