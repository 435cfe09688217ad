package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chris-regnier/moodmemo/internal/logger"
)

// DefaultChannel is the pub/sub channel carrying entry change events.
const DefaultChannel = "moodmemo:entries"

const publishTimeout = 2 * time.Second

// Redis publishes and subscribes to change events over Redis pub/sub.
type Redis struct {
	client  *redis.Client
	channel string
	log     logger.Logger
}

// NewRedis wraps a connected client. An empty channel uses DefaultChannel.
func NewRedis(client *redis.Client, channel string, log logger.Logger) *Redis {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Redis{client: client, channel: channel, log: log}
}

// Publish implements Publisher.
func (r *Redis) Publish(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	return r.client.Publish(ctx, r.channel, data).Err()
}

// Subscribe implements Subscriber. Messages that do not decode as events are
// logged and skipped.
func (r *Redis) Subscribe(ctx context.Context) (<-chan Event, error) {
	ps := r.client.Subscribe(ctx, r.channel)
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, fmt.Errorf("subscribing to %s: %w", r.channel, err)
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		defer ps.Close()
		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					r.log.Warn("dropping malformed feed message",
						logger.String("channel", r.channel), logger.Error(err))
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
