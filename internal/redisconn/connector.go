// Package redisconn opens go-redis clients for the hosted mirror and the
// change feed, retrying the initial ping with exponential backoff.
package redisconn

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chris-regnier/moodmemo/internal/logger"
)

// Options defines the Redis connection and retry behavior.
type Options struct {
	Addr           string        // e.g. "localhost:6379"
	Username       string        // optional
	Password       string        // optional
	DB             int           // database number
	ConnectTimeout time.Duration // total time allowed for connection attempts
	RetryInterval  time.Duration // initial wait between retries, doubled each time
	MaxWait        time.Duration // cap on the wait between retries
	PingTimeout    time.Duration // timeout for each ping
}

// WithDefaults fills zero retry settings.
func (o Options) WithDefaults() Options {
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 10 * time.Second
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = 250 * time.Millisecond
	}
	if o.MaxWait <= 0 {
		o.MaxWait = 2 * time.Second
	}
	if o.PingTimeout <= 0 {
		o.PingTimeout = time.Second
	}
	return o
}

func (o Options) validate() error {
	if o.Addr == "" {
		return fmt.Errorf("redis address is required")
	}
	if o.MaxWait < o.RetryInterval {
		return fmt.Errorf("MaxWait (%v) must be >= RetryInterval (%v)", o.MaxWait, o.RetryInterval)
	}
	return nil
}

// Connect creates a client and waits until it answers PING or the connect
// timeout elapses.
func Connect(opts Options, log logger.Logger) (*redis.Client, error) {
	opts = opts.WithDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := waitForPing(client, opts, log); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func waitForPing(client *redis.Client, opts Options, log logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	log.Debug("connecting to redis", logger.String("addr", opts.Addr))

	attempt := 0
	wait := opts.RetryInterval
	for {
		attempt++
		pingCtx, pingCancel := context.WithTimeout(ctx, opts.PingTimeout)
		err := client.Ping(pingCtx).Err()
		pingCancel()
		if err == nil {
			if attempt > 1 {
				log.Warn("connected to redis after retry",
					logger.String("addr", opts.Addr), logger.Int("attempts", attempt))
			}
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Error("redis unavailable",
				logger.String("addr", opts.Addr),
				logger.Int("attempts", attempt),
				logger.Error(err))
			return fmt.Errorf("redis unavailable at %s after %d attempts: %w", opts.Addr, attempt, err)
		case <-timer.C:
			log.Warn("redis connection failed, retrying",
				logger.String("addr", opts.Addr),
				logger.Int("attempt", attempt),
				logger.Duration("next_retry_in", wait),
				logger.Error(err))
			wait *= 2
			if wait > opts.MaxWait {
				wait = opts.MaxWait
			}
		}
	}
}
