// Package cart owns the authoritative cart sequence: an
// insertion-ordered list of line items, unique by product id, kept in
// sync with one persisted key after every mutation.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/majikbloom/storefront/catalog"
	"github.com/majikbloom/storefront/models"
	"github.com/majikbloom/storefront/storage"
)

// DefaultStorageKey is the persisted-cart key carried over from the
// original storefront.
const DefaultStorageKey = "majikBloomCart"

// Store is the single writer of the cart sequence. Callers mutate the
// cart only through its operations; domain-level failures (unknown
// product, missing line, bad quantity, corrupt payload) are absorbed
// as no-ops or clamps, and only infrastructure faults surface as
// errors.
type Store struct {
	catalog catalog.Repository
	kv      storage.Store
	key     string
	taxRate float64
	logger  *zap.Logger

	items []models.CartItem
}

func NewStore(catalogRepo catalog.Repository, kv storage.Store, key string, taxRate float64, logger *zap.Logger) *Store {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Store{
		catalog: catalogRepo,
		kv:      kv,
		key:     key,
		taxRate: taxRate,
		logger:  logger,
	}
}

// Load hydrates the cart from the persisted key. It is called once at
// startup; a missing key or a payload that fails to parse both yield
// an empty cart and are never surfaced to the user.
func (s *Store) Load(ctx context.Context) {
	payload, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		s.items = nil
		return
	}
	if err != nil {
		s.logger.Error("Failed to load cart, starting empty", zap.Error(err))
		s.items = nil
		return
	}

	var items []models.CartItem
	if err := json.Unmarshal(payload, &items); err != nil {
		s.logger.Warn("Discarding malformed cart payload", zap.Error(err))
		s.items = nil
		return
	}
	s.items = items
}

// AddItem puts one unit of the product in the cart: an existing line
// gains quantity, a new product is appended at the end. Unknown ids
// are ignored. The affected product is returned so the caller can
// announce the addition.
func (s *Store) AddItem(ctx context.Context, productID int) (*models.Product, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		s.logger.Warn("Ignoring add for unknown product", zap.Int("product_id", productID))
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to look up product", zap.Int("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("look up product %d: %w", productID, err)
	}

	if item := s.find(productID); item != nil {
		item.Quantity++
	} else {
		s.items = append(s.items, *models.NewCartItem(product))
	}

	return product, s.persist(ctx)
}

// IncrementQuantity raises a line's quantity by one. Missing lines are
// a no-op.
func (s *Store) IncrementQuantity(ctx context.Context, productID int) error {
	item := s.find(productID)
	if item == nil {
		return nil
	}
	item.Quantity++
	return s.persist(ctx)
}

// DecrementQuantity lowers a line's quantity by one, clamped at 1.
// Removal is a separate operation; decrementing never empties a line.
func (s *Store) DecrementQuantity(ctx context.Context, productID int) error {
	item := s.find(productID)
	if item == nil {
		return nil
	}
	item.Quantity--
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	return s.persist(ctx)
}

// SetQuantity sets a line's quantity to an absolute value. Values
// below 1 are rejected and the prior quantity is retained.
func (s *Store) SetQuantity(ctx context.Context, productID int, quantity int) error {
	if quantity < 1 {
		s.logger.Warn("Rejecting non-positive quantity",
			zap.Int("product_id", productID),
			zap.Int("quantity", quantity))
		return nil
	}
	item := s.find(productID)
	if item == nil {
		return nil
	}
	item.Quantity = quantity
	return s.persist(ctx)
}

// RemoveItem deletes the line for productID. It reports whether a line
// was actually removed so the caller knows to announce it.
func (s *Store) RemoveItem(ctx context.Context, productID int) (bool, error) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(s.items) {
		return false, nil
	}
	s.items = kept
	return true, s.persist(ctx)
}

// Items returns a copy of the cart sequence for rendering.
func (s *Store) Items() []models.CartItem {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount is the badge value: the sum of all line quantities.
func (s *Store) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Totals derives the summary amounts from the current sequence. It is
// recomputed on every call and never cached.
func (s *Store) Totals() Totals {
	var subtotal float64
	for _, item := range s.items {
		subtotal += item.LineTotal()
	}
	tax := subtotal * s.taxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

func (s *Store) find(productID int) *models.CartItem {
	for i := range s.items {
		if s.items[i].ID == productID {
			return &s.items[i]
		}
	}
	return nil
}

// persist writes the whole sequence under the cart key. The empty cart
// serializes as an empty array, not null, so the payload always
// round-trips as a JSON array.
func (s *Store) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []models.CartItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		s.logger.Error("Failed to serialize cart", zap.Error(err))
		return fmt.Errorf("serialize cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, payload); err != nil {
		s.logger.Error("Failed to persist cart", zap.Error(err))
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
