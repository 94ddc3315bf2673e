// Package clipboard is the transient store that copy, cut and paste go
// through. Values are opaque bytes filed under a well-known key.
package clipboard

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

type Store interface {
	Write(key string, data []byte) error
	// Read returns nil when nothing is stored under key.
	Read(key string) ([]byte, error)
}

// Memory keeps clipboard values for the lifetime of the process.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		return append([]byte(nil), v...), nil
	}
	return nil, nil
}

// System shares values through the operating system clipboard. The key is
// written as a header line so text copied by other programs is ignored on
// read.
type System struct{}

func (System) Write(key string, data []byte) error {
	if err := clipboard.WriteAll(string(encode(key, data))); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

func (System) Read(key string) ([]byte, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read system clipboard: %w", err)
	}
	return decode(key, []byte(text)), nil
}

// Available reports whether a system clipboard utility is present.
func Available() bool {
	return !clipboard.Unsupported
}

func header(key string) []byte {
	return []byte("#" + key + "\n")
}

func encode(key string, data []byte) []byte {
	return append(header(key), data...)
}

func decode(key string, raw []byte) []byte {
	h := header(key)
	if !bytes.HasPrefix(raw, h) {
		return nil
	}
	return raw[len(h):]
}
