package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/majikbloom/storefront/models"
)

var _ Repository = (*staticRepository)(nil)

// staticRepository serves a fixed product list from memory. The
// storefront has no product backend; the catalog is injected so the
// cart never has to know where products come from.
type staticRepository struct {
	byID   map[int]*models.Product
	order  []int
	logger *zap.Logger
}

func NewStaticRepository(products []*models.Product, logger *zap.Logger) Repository {
	r := &staticRepository{
		byID:   make(map[int]*models.Product, len(products)),
		order:  make([]int, 0, len(products)),
		logger: logger,
	}
	for _, p := range products {
		if _, exists := r.byID[p.ID]; exists {
			r.logger.Warn("Skipping duplicate catalog product", zap.Int("product_id", p.ID))
			continue
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *staticRepository) GetProduct(_ context.Context, id int) (*models.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *staticRepository) ListProducts(_ context.Context) ([]*models.Product, error) {
	products := make([]*models.Product, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.byID[id]
		products = append(products, &copied)
	}
	return products, nil
}

// DefaultProducts is the demo catalog shipped with the storefront.
func DefaultProducts() []*models.Product {
	return []*models.Product{
		{
			ID:    1,
			Name:  "Enchanted Empress",
			Price: 49.99,
			Image: "https://images.unsplash.com/photo-1600857062243-301a450352c0?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
		},
		{
			ID:    2,
			Name:  "Dragon's Breath OG",
			Price: 54.99,
			Image: "https://images.unsplash.com/photo-1567436864655-7c5d74a373e8?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
		},
		{
			ID:    3,
			Name:  "Celestial Kush",
			Price: 59.99,
			Image: "https://images.unsplash.com/photo-1570475735025-6cd1a5c5c0d7?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
		},
	}
}
