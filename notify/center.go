// Package notify holds the transient on-screen messages: a pushed
// notification is visible for a fixed display window, fades, then
// disappears on its own. Timers are fire-and-forget and never touch
// cart state.
package notify

import (
	"sync"
	"time"

	"github.com/nats-io/nuid"
	"go.uber.org/zap"

	"github.com/majikbloom/storefront/models"
)

const (
	// DefaultTTL is how long a notification stays fully visible.
	DefaultTTL = 3 * time.Second
	// DefaultFade is the dismiss transition after the TTL elapses.
	DefaultFade = 300 * time.Millisecond
)

// Center is safe for concurrent use; notifications arrive from event
// handler goroutines while the presentation layer reads them.
type Center struct {
	ttl    time.Duration
	fade   time.Duration
	logger *zap.Logger

	mu            sync.Mutex
	notifications []*models.Notification
	timers        map[string][]*time.Timer
	closed        bool
}

func NewCenter(ttl, fade time.Duration, logger *zap.Logger) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if fade <= 0 {
		fade = DefaultFade
	}
	return &Center{
		ttl:    ttl,
		fade:   fade,
		logger: logger,
		timers: make(map[string][]*time.Timer),
	}
}

// Push shows a notification and schedules its fade and removal.
func (c *Center) Push(message string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ""
	}

	notification := &models.Notification{
		ID:        nuid.Next(),
		Message:   message,
		CreatedAt: time.Now(),
	}
	c.notifications = append(c.notifications, notification)

	id := notification.ID
	c.timers[id] = []*time.Timer{
		time.AfterFunc(c.ttl, func() { c.markFading(id) }),
		time.AfterFunc(c.ttl+c.fade, func() { c.Dismiss(id) }),
	}

	c.logger.Info("Notification shown", zap.String("notification_id", id), zap.String("message", message))
	return id
}

// Active returns the notifications currently on screen, oldest first.
func (c *Center) Active() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := make([]models.Notification, 0, len(c.notifications))
	for _, n := range c.notifications {
		active = append(active, *n)
	}
	return active
}

// Dismiss removes a notification immediately. Unknown ids are a no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, timer := range c.timers[id] {
		timer.Stop()
	}
	delete(c.timers, id)

	for i, n := range c.notifications {
		if n.ID == id {
			c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
			return
		}
	}
}

// Close stops all pending timers and clears the screen.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for _, timers := range c.timers {
		for _, timer := range timers {
			timer.Stop()
		}
	}
	c.timers = make(map[string][]*time.Timer)
	c.notifications = nil
}

func (c *Center) markFading(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.notifications {
		if n.ID == id {
			n.Fading = true
			return
		}
	}
}
