package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/majikbloom/storefront/models"
	"github.com/majikbloom/storefront/storage"
)

const keyPrefix = "storefront:event:"

var _ Repository = (*repository)(nil)

// Repository records which cart events have been handled, so a
// redelivered event never produces a duplicate notification.
type Repository interface {
	Create(ctx context.Context, event *models.CartEvent) error
	GetByID(ctx context.Context, id string) (*models.CartEvent, error)
	MarkAsProcessed(ctx context.Context, id string) error
}

type repository struct {
	kv     storage.Store
	logger *zap.Logger
}

func NewRepository(kv storage.Store, logger *zap.Logger) Repository {
	return &repository{
		kv:     kv,
		logger: logger,
	}
}

func (r *repository) Create(ctx context.Context, event *models.CartEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serialize event %s: %w", event.ID, err)
	}
	if err := r.kv.Set(ctx, keyPrefix+event.ID, payload); err != nil {
		r.logger.Error("Failed to record event", zap.String("event_id", event.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*models.CartEvent, error) {
	payload, err := r.kv.Get(ctx, keyPrefix+id)
	if err != nil {
		return nil, err
	}
	var event models.CartEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("parse event %s: %w", id, err)
	}
	return &event, nil
}

func (r *repository) MarkAsProcessed(ctx context.Context, id string) error {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	event.Processed = true
	event.UpdatedAt = time.Now()
	return r.Create(ctx, event)
}
