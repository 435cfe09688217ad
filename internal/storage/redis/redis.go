// Package redis mirrors the entry collection into a hosted Redis instance.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/chris-regnier/moodmemo/internal/storage"
)

const opTimeout = 3 * time.Second

// Backend implements storage.Backend with Redis GET/SET. Keys are
// namespaced with a prefix so several users can share one instance.
type Backend struct {
	client *goredis.Client
	prefix string
}

// New wraps a connected client.
func New(client *goredis.Client, prefix string) *Backend {
	return &Backend{client: client, prefix: prefix}
}

func (b *Backend) key(k string) string {
	if b.prefix == "" {
		return k
	}
	return b.prefix + ":" + k
}

// Get implements storage.Backend.
func (b *Backend) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	val, err := b.client.Get(ctx, b.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrNoBlob
		}
		return nil, err
	}
	return val, nil
}

// Set implements storage.Backend.
func (b *Backend) Set(key string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return b.client.Set(ctx, b.key(key), data, 0).Err()
}

// Close closes the client.
func (b *Backend) Close() error {
	return b.client.Close()
}
