// Package memory is an in-process storage backend, used in tests and as the
// "memory" backend for throwaway sessions.
package memory

import (
	"sync"

	"github.com/chris-regnier/moodmemo/internal/storage"
)

// Backend keeps blobs in a map.
type Backend struct {
	mu   sync.Mutex
	data map[string][]byte

	// ReadErr and WriteErr, when set, are returned by Get and Set.
	ReadErr  error
	WriteErr error
}

// New returns an empty backend.
func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

// Get implements storage.Backend.
func (b *Backend) Get(key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ReadErr != nil {
		return nil, b.ReadErr
	}
	v, ok := b.data[key]
	if !ok {
		return nil, storage.ErrNoBlob
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set implements storage.Backend.
func (b *Backend) Set(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.WriteErr != nil {
		return b.WriteErr
	}
	v := make([]byte, len(data))
	copy(v, data)
	b.data[key] = v
	return nil
}

// Close is a no-op.
func (b *Backend) Close() error {
	return nil
}
