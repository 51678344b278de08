package catalog

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/majikbloom/storefront/models"
)

func TestGetProduct(t *testing.T) {
	repo := NewStaticRepository(DefaultProducts(), zap.NewNop())

	product, err := repo.GetProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if product.Name != "Enchanted Empress" || product.Price != 49.99 {
		t.Fatalf("unexpected product %+v", product)
	}

	if _, err := repo.GetProduct(context.Background(), 99); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGetProductReturnsCopy(t *testing.T) {
	repo := NewStaticRepository(DefaultProducts(), zap.NewNop())

	first, _ := repo.GetProduct(context.Background(), 2)
	first.Price = 0

	again, _ := repo.GetProduct(context.Background(), 2)
	if again.Price != 54.99 {
		t.Fatalf("expected catalog untouched, got price %f", again.Price)
	}
}

func TestListProductsKeepsOrder(t *testing.T) {
	repo := NewStaticRepository(DefaultProducts(), zap.NewNop())

	products, err := repo.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	for i, want := range []int{1, 2, 3} {
		if products[i].ID != want {
			t.Fatalf("expected id %d at position %d, got %d", want, i, products[i].ID)
		}
	}
}

func TestDuplicateIDsAreSkipped(t *testing.T) {
	repo := NewStaticRepository([]*models.Product{
		{ID: 7, Name: "first", Price: 1},
		{ID: 7, Name: "second", Price: 2},
	}, zap.NewNop())

	product, err := repo.GetProduct(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if product.Name != "first" {
		t.Fatalf("expected the first entry to win, got %s", product.Name)
	}

	products, _ := repo.ListProducts(context.Background())
	if len(products) != 1 {
		t.Fatalf("expected one product, got %d", len(products))
	}
}
