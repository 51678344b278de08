package catalog

import (
	"context"
	"errors"

	"github.com/majikbloom/storefront/models"
)

// ErrProductNotFound is returned for ids the catalog does not carry.
var ErrProductNotFound = errors.New("catalog: product not found")

type Repository interface {
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
}
