// Package disk stores slots with peterbourgon/diskv, which adds an
// in-memory read cache in front of plain files.
package disk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/chris-regnier/moodmemo/internal/storage"
)

const cacheSizeMax = 1024 * 1024 // 1MB

// Backend implements storage.Backend over diskv.
type Backend struct {
	d *diskv.Diskv
}

// New creates a diskv store rooted at dataDir/kv.
func New(dataDir string) (*Backend, error) {
	basePath := filepath.Join(dataDir, "kv")
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating kv directory: %v", storage.ErrStorage, err)
	}
	return &Backend{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: cacheSizeMax,
	})}, nil
}

// Get implements storage.Backend.
func (b *Backend) Get(key string) ([]byte, error) {
	val, err := b.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrNoBlob
		}
		return nil, err
	}
	return val, nil
}

// Set implements storage.Backend.
func (b *Backend) Set(key string, data []byte) error {
	return b.d.Write(key, data)
}

// Close is a no-op; diskv holds no open handles.
func (b *Backend) Close() error {
	return nil
}
