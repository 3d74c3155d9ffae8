package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"trial-shop/models"
)

var requiredProductColumns = []string{"id", "name", "price", "image", "room_type", "breakfast_options", "breakfast_prices"}

// CatalogRepository reads the product and spec CSV files. Files are read on
// every call so catalog edits show up on the next request.
type CatalogRepository struct {
	productsPath string
	specsPath    string
}

func NewCatalogRepository(productsPath, specsPath string) *CatalogRepository {
	return &CatalogRepository{productsPath: productsPath, specsPath: specsPath}
}

// Load returns the products with their specs attached.
func (r *CatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	products, err := r.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	specs, err := r.LoadSpecs(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		products[i].Specs = specs[SpecKey(products[i].ID)]
	}
	return models.NewCatalog(products), nil
}

func (r *CatalogRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	f, err := os.Open(r.productsPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return ParseProducts(ctx, f)
}

// LoadSpecs returns spec text keyed by the zero-padded product ID. A missing
// specs file yields an empty map.
func (r *CatalogRepository) LoadSpecs(ctx context.Context) (map[string]string, error) {
	if r.specsPath == "" {
		return map[string]string{}, nil
	}
	f, err := os.Open(r.specsPath)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open specs: %w", err)
	}
	defer f.Close()

	return ParseSpecs(ctx, f)
}

func ParseProducts(ctx context.Context, src io.Reader) ([]models.Product, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", models.ErrCatalogInvalid, err)
	}
	cols := columnIndex(header)
	for _, name := range requiredProductColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", models.ErrCatalogInvalid, name)
		}
	}

	products := []models.Product{}
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", models.ErrCatalogInvalid, line, err)
		}

		p, err := parseProduct(record, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", models.ErrCatalogInvalid, line, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func parseProduct(record []string, cols map[string]int) (models.Product, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	p := models.Product{
		ID:               field("id"),
		Name:             field("name"),
		Image:            field("image"),
		RoomTypes:        splitMulti(field("room_type")),
		BreakfastOptions: splitMulti(field("breakfast_options")),
	}
	if p.ID == "" {
		return p, errors.New("empty product id")
	}

	price, err := strconv.Atoi(field("price"))
	if err != nil || price < 0 {
		return p, fmt.Errorf("product %s: invalid price %q", p.ID, field("price"))
	}
	p.Price = price

	p.BreakfastPrices = []int{}
	for _, raw := range splitMulti(field("breakfast_prices")) {
		bp, err := strconv.Atoi(raw)
		if err != nil || bp < 0 {
			return p, fmt.Errorf("product %s: invalid breakfast price %q", p.ID, raw)
		}
		p.BreakfastPrices = append(p.BreakfastPrices, bp)
	}
	if len(p.BreakfastPrices) != len(p.BreakfastOptions) {
		return p, fmt.Errorf("product %s: %d breakfast options but %d prices", p.ID, len(p.BreakfastOptions), len(p.BreakfastPrices))
	}
	return p, nil
}

func ParseSpecs(ctx context.Context, src io.Reader) (map[string]string, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read specs header: %v", models.ErrCatalogInvalid, err)
	}
	cols := columnIndex(header)
	idCol, ok := cols["id"]
	if !ok {
		return nil, fmt.Errorf("%w: specs missing column \"id\"", models.ErrCatalogInvalid)
	}
	specCol, ok := cols["specs"]
	if !ok {
		return nil, fmt.Errorf("%w: specs missing column \"specs\"", models.ErrCatalogInvalid)
	}

	specs := map[string]string{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: specs: %v", models.ErrCatalogInvalid, err)
		}
		if idCol >= len(record) || specCol >= len(record) {
			continue
		}
		specs[SpecKey(strings.TrimSpace(record[idCol]))] = strings.TrimSpace(record[specCol])
	}
	return specs, nil
}

// SpecKey zero-pads numeric IDs to three digits; other IDs are used as-is.
func SpecKey(id string) string {
	n, err := strconv.Atoi(id)
	if err != nil || n < 0 {
		return id
	}
	return fmt.Sprintf("%03d", n)
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	return cols
}

func splitMulti(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
