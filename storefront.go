// Package storefront wires the cart store, catalog, event pipeline and
// notification center into the service a presentation layer talks to.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nuid"
	"go.uber.org/zap"

	"github.com/majikbloom/storefront/cart"
	"github.com/majikbloom/storefront/catalog"
	"github.com/majikbloom/storefront/contact"
	"github.com/majikbloom/storefront/event"
	"github.com/majikbloom/storefront/models"
	"github.com/majikbloom/storefront/models/enum"
	"github.com/majikbloom/storefront/notify"
)

// ErrEmptyCart blocks checkout when there is nothing to buy.
var ErrEmptyCart = errors.New("storefront: cart is empty")

// User-facing copy carried over from the original storefront.
const (
	msgItemAdded     = "%s added to cart!"
	msgItemRemoved   = "Item removed from cart"
	msgEmptyCart     = "Your cart is empty!"
	msgOrderPlaced   = "Thank you for your order! This is a demo site, so no actual purchase will be made."
	msgContactThanks = "Thank you for your message! We will get back to you soon."
)

type Service interface {
	AddItemToCart(ctx context.Context, productID int) error
	IncrementItemQuantity(ctx context.Context, productID int) error
	DecrementItemQuantity(ctx context.Context, productID int) error
	SetItemQuantity(ctx context.Context, productID int, quantity int) error
	RemoveItemFromCart(ctx context.Context, productID int) error

	CartItems() []models.CartItem
	CartItemCount() int
	CartTotals() cart.Totals

	ListProducts(ctx context.Context) ([]*models.Product, error)

	Checkout(ctx context.Context) error
	SubmitContactMessage(ctx context.Context, msg contact.Message) error

	Notifications() []models.Notification

	Close()
}

type service struct {
	catalog  catalog.Repository
	cart     *cart.Store
	events   event.Repository
	notifier *notify.Center

	eventManager *EventManager
	workerPool   *WorkerPool

	logger *zap.Logger
}

func NewService(
	ctx context.Context,
	catalogRepo catalog.Repository, cartStore *cart.Store, events event.Repository, notifier *notify.Center,
	bus EventBus,
	logger *zap.Logger) Service {
	s := &service{
		catalog:  catalogRepo,
		cart:     cartStore,
		events:   events,
		notifier: notifier,
		logger:   logger,
	}
	s.eventManager = NewEventManager(bus, logger)
	s.workerPool = NewWorkerPool(4, s, logger)
	s.registerEventHandlers()

	if err := s.eventManager.SubscribeToEvents(s.workerPool); err != nil {
		logger.Error("Failed to subscribe to cart events", zap.Error(err))
	}

	// Rehydrate the cart persisted by the previous session.
	s.cart.Load(ctx)

	return s
}

func (s *service) AddItemToCart(ctx context.Context, productID int) error {
	product, err := s.cart.AddItem(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		// Unknown product ids are ignored without user-visible errors.
		return nil
	}

	s.publishEvent(enum.CartEventTypeItemAdded, product.ID, fmt.Sprintf(msgItemAdded, product.Name))
	return nil
}

func (s *service) IncrementItemQuantity(ctx context.Context, productID int) error {
	return s.cart.IncrementQuantity(ctx, productID)
}

func (s *service) DecrementItemQuantity(ctx context.Context, productID int) error {
	return s.cart.DecrementQuantity(ctx, productID)
}

func (s *service) SetItemQuantity(ctx context.Context, productID int, quantity int) error {
	if quantity < 1 {
		s.logger.Warn("Rejecting non-positive quantity from input",
			zap.Int("product_id", productID),
			zap.Int("quantity", quantity))
		return nil
	}
	return s.cart.SetQuantity(ctx, productID, quantity)
}

func (s *service) RemoveItemFromCart(ctx context.Context, productID int) error {
	removed, err := s.cart.RemoveItem(ctx, productID)
	if err != nil {
		return err
	}
	if removed {
		s.publishEvent(enum.CartEventTypeItemRemoved, productID, msgItemRemoved)
	}
	return nil
}

func (s *service) CartItems() []models.CartItem {
	return s.cart.Items()
}

func (s *service) CartItemCount() int {
	return s.cart.ItemCount()
}

func (s *service) CartTotals() cart.Totals {
	return s.cart.Totals()
}

func (s *service) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.catalog.ListProducts(ctx)
}

// Checkout is a stub confirmation: an empty cart blocks with a
// user-visible message, a non-empty one gets a thank-you note. No
// order is submitted and the cart is left untouched.
func (s *service) Checkout(_ context.Context) error {
	if s.cart.ItemCount() == 0 {
		s.notifier.Push(msgEmptyCart)
		return ErrEmptyCart
	}

	totals := s.cart.Totals()
	s.logger.Info("Checkout confirmed",
		zap.Int("item_count", s.cart.ItemCount()),
		zap.Float64("total", totals.Total))

	s.publishEvent(enum.CartEventTypeCheckoutCompleted, 0, msgOrderPlaced)
	return nil
}

func (s *service) SubmitContactMessage(_ context.Context, msg contact.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	s.logger.Info("Contact message received", zap.String("email", msg.Email))
	s.notifier.Push(msgContactThanks)
	return nil
}

func (s *service) Notifications() []models.Notification {
	return s.notifier.Active()
}

// Close drains the worker pool and clears pending notifications.
func (s *service) Close() {
	s.workerPool.Shutdown()
	s.notifier.Close()
}

// publishEvent puts the mutation on the bus; the subscription feeds it
// back through the worker pool into a notification. If the bus is
// down the notification is raised directly so the user still sees it.
func (s *service) publishEvent(eventType enum.CartEventType, productID int, message string) {
	evt := &models.CartEvent{
		ID:        nuid.Next(),
		Type:      eventType,
		ProductID: productID,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.eventManager.Publish(evt); err != nil {
		s.logger.Error("Failed to publish cart event",
			zap.String("event_type", string(eventType)),
			zap.Error(err))
		s.notifier.Push(message)
	}
}
