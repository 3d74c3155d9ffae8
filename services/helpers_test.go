package services

import (
	"context"
	"errors"
	"sync"

	"trial-shop/models"
)

type staticLoader struct {
	catalog *models.Catalog
	err     error
}

func (l *staticLoader) Load(ctx context.Context) (*models.Catalog, error) {
	if l.err != nil {
		return nil, l.err
	}
	return models.NewCatalog(l.catalog.Products()), nil
}

type recordingSink struct {
	mu      sync.Mutex
	records []models.ActionRecord
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Append(ctx context.Context, rec models.ActionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Action)
	}
	return out
}

func (s *recordingSink) byAction(action string) []models.ActionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ActionRecord
	for _, rec := range s.records {
		if rec.Action == action {
			out = append(out, rec)
		}
	}
	return out
}

type failingSink struct{}

func (failingSink) Name() string { return "broken" }

func (failingSink) Append(ctx context.Context, rec models.ActionRecord) error {
	return errors.New("disk full")
}

type prefixImages struct{}

func (prefixImages) URL(name string) string { return "/static/images/" + name + ".jpg" }

func hotelCatalog() *models.Catalog {
	return models.NewCatalog([]models.Product{
		{
			ID: "1", Name: "Harbor View", Price: 100, Image: "hotel1",
			RoomTypes:        []string{"single", "double"},
			BreakfastOptions: []string{"none", "buffet"},
			BreakfastPrices:  []int{0, 1500},
		},
		{ID: "2", Name: "Garden Inn", Price: 200, Image: "hotel2.jpg"},
	})
}
