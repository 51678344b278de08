package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/majikbloom/storefront/models"
	"github.com/majikbloom/storefront/models/enum"
)

const (
	cartEventSubjectPrefix = "storefront.cart.event."
	cartEventWildcard      = cartEventSubjectPrefix + ">"
)

type EventHandler func(context.Context, *models.CartEvent) error

// EventBus is the slice of the NATS connection the event manager
// needs; *nats.Conn satisfies it.
type EventBus interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error)
}

type EventManager struct {
	bus      EventBus
	handlers map[enum.CartEventType]EventHandler
	logger   *zap.Logger
}

func NewEventManager(bus EventBus, logger *zap.Logger) *EventManager {
	return &EventManager{
		bus:      bus,
		handlers: make(map[enum.CartEventType]EventHandler),
		logger:   logger,
	}
}

func (em *EventManager) RegisterHandler(eventType enum.CartEventType, handler EventHandler) {
	em.handlers[eventType] = handler
}

func (em *EventManager) GetHandler(eventType enum.CartEventType) (EventHandler, bool) {
	handler, exists := em.handlers[eventType]
	return handler, exists
}

// Publish puts a cart event on the bus under its type-specific subject.
func (em *EventManager) Publish(event *models.CartEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serialize cart event: %w", err)
	}
	return em.bus.Publish(cartEventSubjectPrefix+string(event.Type), data)
}

func (em *EventManager) SubscribeToEvents(wp *WorkerPool) error {
	_, err := em.bus.Subscribe(cartEventWildcard, func(msg *nats.Msg) {
		var event models.CartEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			em.logger.Error("Failed to unmarshal cart event", zap.Error(err))
			return
		}

		wp.Submit(context.Background(), &event)
	})

	return err
}

func (s *service) registerEventHandlers() {
	eventHandlers := map[enum.CartEventType]EventHandler{
		enum.CartEventTypeItemAdded:         s.handleItemAdded,
		enum.CartEventTypeItemRemoved:       s.handleItemRemoved,
		enum.CartEventTypeCheckoutCompleted: s.handleCheckoutCompleted,
	}

	for eventType, handler := range eventHandlers {
		s.eventManager.RegisterHandler(eventType, handler)
	}
}

func (s *service) handleItemAdded(_ context.Context, event *models.CartEvent) error {
	s.logger.Info("Handling item added event",
		zap.String("event_id", event.ID),
		zap.Int("product_id", event.ProductID))
	s.notifier.Push(event.Message)
	return nil
}

func (s *service) handleItemRemoved(_ context.Context, event *models.CartEvent) error {
	s.logger.Info("Handling item removed event",
		zap.String("event_id", event.ID),
		zap.Int("product_id", event.ProductID))
	s.notifier.Push(event.Message)
	return nil
}

func (s *service) handleCheckoutCompleted(_ context.Context, event *models.CartEvent) error {
	s.logger.Info("Handling checkout completed event", zap.String("event_id", event.ID))
	s.notifier.Push(event.Message)
	return nil
}

// ProcessEvent runs one cart event through its handler exactly once.
// Events already recorded in the repository are skipped.
func (s *service) ProcessEvent(ctx context.Context, event *models.CartEvent) error {
	if existing, err := s.events.GetByID(ctx, event.ID); err == nil && existing.Processed {
		s.logger.Info("Event already processed", zap.String("event_id", event.ID))
		return nil
	}

	handler, exists := s.eventManager.GetHandler(event.Type)
	if !exists {
		return fmt.Errorf("no handler registered for event type: %s", event.Type)
	}

	if err := s.events.Create(ctx, &models.CartEvent{
		ID:        event.ID,
		Type:      event.Type,
		ProductID: event.ProductID,
		Message:   event.Message,
		Processed: false,
		CreatedAt: event.CreatedAt,
		UpdatedAt: time.Now(),
	}); err != nil {
		s.logger.Error("Failed to record event", zap.Error(err))
		return err
	}

	if err := handler(ctx, event); err != nil {
		s.logger.Error("Failed to handle event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
		return err
	}

	if err := s.events.MarkAsProcessed(ctx, event.ID); err != nil {
		s.logger.Warn("Failed to mark event as processed", zap.String("event_id", event.ID), zap.Error(err))
	}

	s.logger.Info("Cart event processed", zap.String("event_id", event.ID))

	return nil
}
