package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"trial-shop/libs"
)

func newImagesCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "images",
		Short: "Upload product images to Cloudinary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if !cfg.CloudinaryConfigured() {
				return errors.New("cloudinary credentials not configured")
			}
			if dir == "" {
				dir = cfg.StaticDir + "/images"
			}

			cld, err := libs.NewCloudinaryImages(cfg.CloudinaryName, cfg.CloudinaryKey, cfg.CloudinarySec, cfg.ImageFolder, libs.NewStaticImages("/static/images"), logger)
			if err != nil {
				return err
			}
			n, err := cld.UploadDir(cmd.Context(), dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d images\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "image directory (default STATIC_DIR/images)")
	return cmd
}
