// Package storage is the key-value persistence collaborator of the canvas
// engine, plus an asynchronous writer that keeps saves off the interactive
// path.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned for writes submitted after the writer shut down.
var ErrClosed = errors.New("storage: writer closed")

// Backend stores opaque values under string keys. Get returns a nil value
// and no error when the key is absent.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
