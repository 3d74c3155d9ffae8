package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"trial-shop/models"
	"trial-shop/repositories"
)

func newCatalogCommand() *cobra.Command {
	var productsPath, specsPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Load the product catalog and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if productsPath == "" {
				productsPath = cfg.CatalogPath
			}
			if specsPath == "" {
				specsPath = cfg.SpecsPath
			}

			catalog, err := repositories.NewCatalogRepository(productsPath, specsPath).Load(cmd.Context())
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), catalog)
			return nil
		},
	}

	cmd.Flags().StringVar(&productsPath, "products", "", "products CSV (default CATALOG_PATH)")
	cmd.Flags().StringVar(&specsPath, "specs", "", "specs CSV (default SPECS_PATH)")
	return cmd
}

func printCatalog(w io.Writer, catalog *models.Catalog) {
	for _, p := range catalog.Products() {
		rooms := "-"
		if p.HasRoomTypes() {
			rooms = strings.Join(p.RoomTypes, "|")
		}
		breakfast := "-"
		if p.HasBreakfastOptions() {
			breakfast = strings.Join(p.BreakfastOptions, "|")
		}
		specs := "no"
		if p.Specs != "" {
			specs = "yes"
		}
		fmt.Fprintf(w, "%-6s %-30s %8d  rooms=%s breakfast=%s specs=%s\n", p.ID, p.Name, p.Price, rooms, breakfast, specs)
	}
	fmt.Fprintf(w, "%d products\n", catalog.Len())
}
