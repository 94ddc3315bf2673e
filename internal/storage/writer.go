package storage

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// WriteTimeout bounds a single backend write.
const WriteTimeout = 5 * time.Second

// AsyncWriter persists values on a single background goroutine. Submit never
// blocks: pending values are coalesced per key so only the latest value of a
// key is written, and writes from one writer never reorder. Failures are
// logged and dropped; the next successful write of the key reconciles it.
type AsyncWriter struct {
	backend Backend
	logger  *zap.Logger

	mu      sync.Mutex
	pending map[string][]byte
	order   []string
	closed  bool

	wake    chan struct{}
	flushes chan chan struct{}
	stop    chan struct{}
	done    chan struct{}
}

func NewAsyncWriter(backend Backend, logger *zap.Logger) *AsyncWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &AsyncWriter{
		backend: backend,
		logger:  logger,
		pending: make(map[string][]byte),
		wake:    make(chan struct{}, 1),
		flushes: make(chan chan struct{}),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// Submit queues value for key, replacing any value not yet written.
func (w *AsyncWriter) Submit(key string, value []byte) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	if _, queued := w.pending[key]; !queued {
		w.order = append(w.order, key)
	}
	w.pending[key] = value
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
	return nil
}

// Flush blocks until every value submitted before the call is written or
// failed.
func (w *AsyncWriter) Flush(ctx context.Context) error {
	ack := make(chan struct{})
	select {
	case w.flushes <- ack:
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close writes what is pending and stops the goroutine.
func (w *AsyncWriter) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.stop)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *AsyncWriter) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.drain()
		case ack := <-w.flushes:
			w.drain()
			close(ack)
		case <-w.stop:
			w.drain()
			return
		}
	}
}

func (w *AsyncWriter) drain() {
	for {
		w.mu.Lock()
		if len(w.order) == 0 {
			w.mu.Unlock()
			return
		}
		key := w.order[0]
		w.order = w.order[1:]
		value := w.pending[key]
		delete(w.pending, key)
		w.mu.Unlock()

		w.write(key, value)
	}
}

func (w *AsyncWriter) write(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), WriteTimeout)
	defer cancel()

	if err := w.backend.Set(ctx, key, value); err != nil {
		w.logger.Error("Failed to persist value",
			zap.String("key", key),
			zap.Int("bytes", len(value)),
			zap.Error(err))
		return
	}
	w.logger.Debug("Persisted value", zap.String("key", key), zap.Int("bytes", len(value)))
}
