// Package storage is the key-value persistence boundary. It plays the
// role the browser's local storage played for the original storefront:
// a flat namespace of string keys holding opaque payloads, scoped to
// one deployment and surviving restarts of the process that owns it.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when the requested key has never been
// written (or has been deleted).
var ErrKeyNotFound = errors.New("storage: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
