package models

import (
	"time"

	"github.com/majikbloom/storefront/models/enum"
)

// CartEvent describes one user-visible cart mutation. Events travel
// over the bus and drive the notification handlers.
type CartEvent struct {
	ID        string             `json:"id"`
	Type      enum.CartEventType `json:"type"`
	ProductID int                `json:"product_id,omitempty"`
	Message   string             `json:"message"`
	Processed bool               `json:"processed"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
