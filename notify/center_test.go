package notify

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNotificationLifecycle(t *testing.T) {
	c := NewCenter(60*time.Millisecond, 40*time.Millisecond, zap.NewNop())
	defer c.Close()

	id := c.Push("hello")
	if id == "" {
		t.Fatal("expected a notification id")
	}

	active := c.Active()
	if len(active) != 1 || active[0].Message != "hello" || active[0].Fading {
		t.Fatalf("expected one fresh notification, got %+v", active)
	}

	// Past the display window it should be fading but still visible.
	time.Sleep(80 * time.Millisecond)
	active = c.Active()
	if len(active) != 1 || !active[0].Fading {
		t.Fatalf("expected a fading notification, got %+v", active)
	}

	// Past the fade window it should be gone.
	time.Sleep(60 * time.Millisecond)
	if active = c.Active(); len(active) != 0 {
		t.Fatalf("expected notification removed, got %+v", active)
	}
}

func TestDismissRemovesImmediately(t *testing.T) {
	c := NewCenter(time.Minute, time.Second, zap.NewNop())
	defer c.Close()

	id := c.Push("stuck")
	c.Dismiss(id)

	if active := c.Active(); len(active) != 0 {
		t.Fatalf("expected no notifications, got %+v", active)
	}
}

func TestDismissUnknownIDIsNoOp(t *testing.T) {
	c := NewCenter(time.Minute, time.Second, zap.NewNop())
	defer c.Close()

	c.Push("keep me")
	c.Dismiss("no-such-id")

	if active := c.Active(); len(active) != 1 {
		t.Fatalf("expected one notification, got %+v", active)
	}
}

func TestOrderIsOldestFirst(t *testing.T) {
	c := NewCenter(time.Minute, time.Second, zap.NewNop())
	defer c.Close()

	c.Push("first")
	c.Push("second")

	active := c.Active()
	if len(active) != 2 || active[0].Message != "first" || active[1].Message != "second" {
		t.Fatalf("expected [first, second], got %+v", active)
	}
}

func TestCloseClearsAndStopsAccepting(t *testing.T) {
	c := NewCenter(time.Minute, time.Second, zap.NewNop())

	c.Push("going away")
	c.Close()

	if active := c.Active(); len(active) != 0 {
		t.Fatalf("expected empty center after close, got %+v", active)
	}
	if id := c.Push("too late"); id != "" {
		t.Fatalf("expected push after close to be ignored, got id %s", id)
	}
}
