package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		if _, err := s.Get(ctx, "absent"); !errors.Is(err, ErrKeyNotFound) {
			t.Fatalf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		if err := s.Set(ctx, "k", []byte("v")); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := s.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(got) != "v" {
			t.Fatalf("expected v, got %s", got)
		}
	})

	t.Run("returned slice is isolated", func(t *testing.T) {
		got, _ := s.Get(ctx, "k")
		got[0] = 'x'

		again, _ := s.Get(ctx, "k")
		if string(again) != "v" {
			t.Fatalf("expected stored value untouched, got %s", again)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := s.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrKeyNotFound) {
			t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
		}
	})
}
