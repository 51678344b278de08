package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CartStorageKey != "majikBloomCart" {
		t.Fatalf("expected majikBloomCart, got %s", cfg.CartStorageKey)
	}
	if cfg.TaxRate != 0.08 {
		t.Fatalf("expected tax rate 0.08, got %f", cfg.TaxRate)
	}
	if cfg.NotifyTTL != 3*time.Second {
		t.Fatalf("expected 3s notification TTL, got %s", cfg.NotifyTTL)
	}
	if cfg.NotifyFade != 300*time.Millisecond {
		t.Fatalf("expected 300ms fade, got %s", cfg.NotifyFade)
	}
	if cfg.RedisAddr == "" || cfg.NATSURL == "" {
		t.Fatalf("expected connection defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CART_STORAGE_KEY", "testCart")
	t.Setenv("CART_TAX_RATE", "0.1")
	t.Setenv("NOTIFY_TTL", "1s")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CartStorageKey != "testCart" {
		t.Fatalf("expected testCart, got %s", cfg.CartStorageKey)
	}
	if cfg.TaxRate != 0.1 {
		t.Fatalf("expected tax rate 0.1, got %f", cfg.TaxRate)
	}
	if cfg.NotifyTTL != time.Second {
		t.Fatalf("expected 1s TTL, got %s", cfg.NotifyTTL)
	}
	if cfg.RedisDB != 2 {
		t.Fatalf("expected redis db 2, got %d", cfg.RedisDB)
	}
}
