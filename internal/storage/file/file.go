// Package file stores each slot as a JSON file in the data directory.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"syscall"

	"github.com/chris-regnier/moodmemo/internal/storage"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Backend implements storage.Backend with one file per key.
type Backend struct {
	dir string
}

// New creates the data directory if needed.
func New(dataDir string) (*Backend, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}
	return &Backend{dir: dataDir}, nil
}

// Path returns the file that holds key.
func (b *Backend) Path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Get implements storage.Backend.
func (b *Backend) Get(key string) ([]byte, error) {
	if !keyPattern.MatchString(key) {
		return nil, fmt.Errorf("invalid key %q", key)
	}
	data, err := os.ReadFile(b.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrNoBlob
		}
		return nil, err
	}
	return data, nil
}

// Set implements storage.Backend. The file is replaced atomically while an
// exclusive lock on the key's .lock file is held, so concurrent writers from
// other processes take turns.
func (b *Backend) Set(key string, data []byte) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid key %q", key)
	}
	unlock, err := lockFile(b.LockPath(key))
	if err != nil {
		return err
	}
	defer unlock()
	return atomicWrite(b.Path(key), data)
}

// LockPath returns the lock file guarding writes to key.
func (b *Backend) LockPath(key string) string {
	return filepath.Join(b.dir, key+".lock")
}

// Close is a no-op for the file backend.
func (b *Backend) Close() error {
	return nil
}

// lockFile blocks until it holds an exclusive flock on path.
func lockFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("acquiring lock: %w", err)
	}
	return func() {
		syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
		f.Close()
	}, nil
}

// atomicWrite writes data to a temp file then renames it over path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming file: %w", err)
	}
	return nil
}
