package enum

// CartEventType labels the cart mutations that produce user-facing
// notifications.
type CartEventType string

const (
	CartEventTypeItemAdded         CartEventType = "item_added"
	CartEventTypeItemRemoved       CartEventType = "item_removed"
	CartEventTypeCheckoutCompleted CartEventType = "checkout_completed"
)
