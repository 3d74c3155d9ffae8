package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trial-shop/config"
)

// NewRootCommand builds the trial-shop CLI. Running it without a subcommand
// starts the server.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "trial-shop",
		Short:        "Experimental storefront for product trials",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newCatalogCommand())
	cmd.AddCommand(newImagesCommand())
	cmd.AddCommand(newAdminKeyCommand())
	return cmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg := config.LoadConfig()
	logger, err := config.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
