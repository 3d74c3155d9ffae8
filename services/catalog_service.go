package services

import (
	"context"
	"fmt"

	"trial-shop/models"
)

type CatalogLoader interface {
	Load(ctx context.Context) (*models.Catalog, error)
}

type ImageResolver interface {
	URL(name string) string
}

// CatalogService loads the catalog once per request and attaches image URLs.
type CatalogService struct {
	loader CatalogLoader
	images ImageResolver
}

func NewCatalogService(loader CatalogLoader, images ImageResolver) *CatalogService {
	return &CatalogService{loader: loader, images: images}
}

func (s *CatalogService) Load(ctx context.Context) (*models.Catalog, error) {
	catalog, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if s.images == nil {
		return catalog, nil
	}

	products := catalog.Products()
	for i := range products {
		products[i].ImageURL = s.images.URL(models.ResolveImage(products[i].Image, ""))
	}
	return models.NewCatalog(products), nil
}

func (s *CatalogService) decorate(items []models.CartViewItem) {
	if s.images == nil {
		return
	}
	for i := range items {
		items[i].ImageURL = s.images.URL(items[i].Image)
	}
}
