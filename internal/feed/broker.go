package feed

import (
	"context"
	"errors"
	"sync"
)

// Broker fans events out to in-process subscribers. A subscriber that falls
// more than its buffer behind misses events rather than blocking writers.
type Broker struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	buffer int
}

// NewBroker returns a broker whose subscriptions buffer up to buffer events.
func NewBroker(buffer int) *Broker {
	if buffer < 1 {
		buffer = 1
	}
	return &Broker{subs: make(map[chan Event]struct{}), buffer: buffer}
}

// Publish implements Publisher. It never blocks.
func (b *Broker) Publish(ev Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}

// Subscribe implements Subscriber. The channel closes once ctx is done.
func (b *Broker) Subscribe(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, b.buffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, ch)
		close(ch)
		b.mu.Unlock()
	}()
	return ch, nil
}

// Subscribers reports the number of live subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Multi publishes every event to each publisher in turn and joins their
// errors.
type Multi []Publisher

// Publish implements Publisher.
func (m Multi) Publish(ev Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
