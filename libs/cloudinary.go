package libs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// CloudinaryImages resolves product image names to Cloudinary delivery URLs
// and uploads catalog images under the same public IDs.
type CloudinaryImages struct {
	cld      *cloudinary.Cloudinary
	folder   string
	fallback StaticImages
	logger   *zap.Logger
}

func NewCloudinaryImages(cloudName, apiKey, apiSecret, folder string, fallback StaticImages, logger *zap.Logger) (*CloudinaryImages, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryImages{cld: cld, folder: strings.Trim(folder, "/"), fallback: fallback, logger: logger}, nil
}

func (s *CloudinaryImages) publicID(name string) string {
	if s.folder == "" {
		return name
	}
	return s.folder + "/" + name
}

// URL falls back to the static path when the asset URL cannot be built.
func (s *CloudinaryImages) URL(name string) string {
	if name == "" {
		return ""
	}
	img, err := s.cld.Image(s.publicID(name))
	if err != nil {
		s.logger.Warn("cloudinary image lookup failed", zap.String("image", name), zap.Error(err))
		return s.fallback.URL(name)
	}
	url, err := img.String()
	if err != nil {
		s.logger.Warn("cloudinary url build failed", zap.String("image", name), zap.Error(err))
		return s.fallback.URL(name)
	}
	return url
}

// UploadDir uploads every image in dir, using the file name without extension
// as the public ID. It returns the number of files uploaded.
func (s *CloudinaryImages) UploadDir(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read image dir: %w", err)
	}

	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		overwrite := true

		resp, err := s.cld.Upload.Upload(ctx, filepath.Join(dir, entry.Name()), uploader.UploadParams{
			PublicID:     s.publicID(name),
			ResourceType: "image",
			Overwrite:    &overwrite,
		})
		if err != nil {
			return uploaded, fmt.Errorf("upload %s: %w", entry.Name(), err)
		}
		if resp.Error.Message != "" {
			return uploaded, fmt.Errorf("upload %s: %s", entry.Name(), resp.Error.Message)
		}

		s.logger.Info("image uploaded", zap.String("public_id", resp.PublicID), zap.String("url", resp.SecureURL))
		uploaded++
	}
	return uploaded, nil
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func isImage(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}
