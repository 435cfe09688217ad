// Package feed merges realtime entry change events into an in-memory view
// of the collection, and publishes the store's own writes as events.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/chris-regnier/moodmemo/internal/entry"
)

// EventType is the kind of change an event carries.
type EventType string

const (
	Insert EventType = "insert"
	Update EventType = "update"
	Delete EventType = "delete"
)

// Event is one change to the entry collection. Insert and Update carry New;
// Delete carries Old (only its ID is required).
type Event struct {
	Type EventType    `json:"type"`
	New  *entry.Entry `json:"new,omitempty"`
	Old  *entry.Entry `json:"old,omitempty"`
	At   time.Time    `json:"at"`
}

// ID returns the id of the entry the event refers to.
func (ev Event) ID() string {
	if ev.New != nil {
		return ev.New.ID
	}
	if ev.Old != nil {
		return ev.Old.ID
	}
	return ""
}

// Publisher sends change events to the feed.
type Publisher interface {
	Publish(ev Event) error
}

// Subscriber delivers change events until ctx is cancelled. The returned
// channel is closed when the subscription ends.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan Event, error)
}

// Nop is a Publisher that drops every event.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(Event) error { return nil }

// View is an in-memory copy of the collection kept current by applying feed
// events, without re-reading the store.
type View struct {
	mu      sync.RWMutex
	entries []entry.Entry
}

// NewView seeds a view with the initial collection.
func NewView(initial []entry.Entry) *View {
	v := &View{entries: make([]entry.Entry, len(initial))}
	copy(v.entries, initial)
	return v
}

// Apply merges one event using the store's upsert/delete semantics: an insert
// is appended unless the id already exists, an update replaces by id (or
// appends), and a delete removes every entry with the id. It reports whether
// the view changed.
func (v *View) Apply(ev Event) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch ev.Type {
	case Insert:
		if ev.New == nil || v.indexOf(ev.New.ID) >= 0 {
			return false
		}
		v.entries = append(v.entries, *ev.New)
		return true
	case Update:
		if ev.New == nil {
			return false
		}
		if i := v.indexOf(ev.New.ID); i >= 0 {
			v.entries[i] = *ev.New
		} else {
			v.entries = append(v.entries, *ev.New)
		}
		return true
	case Delete:
		id := ev.ID()
		if id == "" {
			return false
		}
		kept := v.entries[:0]
		changed := false
		for _, e := range v.entries {
			if e.ID == id {
				changed = true
				continue
			}
			kept = append(kept, e)
		}
		v.entries = kept
		return changed
	}
	return false
}

// GetAll returns a copy of the current collection.
func (v *View) GetAll() []entry.Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]entry.Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

func (v *View) indexOf(id string) int {
	for i, e := range v.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Run applies events from sub to view until ctx is done or the subscription
// closes. onChange, if set, is called after each event that changed the view.
// Events published before Subscribe returns are not seen; callers seeding a
// view from storage should Subscribe first and use Pump.
func Run(ctx context.Context, sub Subscriber, view *View, onChange func(Event)) error {
	events, err := sub.Subscribe(ctx)
	if err != nil {
		return err
	}
	return Pump(ctx, events, view, onChange)
}

// Pump applies events to view until ctx is done or events is closed.
// Replaying an event the view already reflects leaves it unchanged.
func Pump(ctx context.Context, events <-chan Event, view *View, onChange func(Event)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if view.Apply(ev) && onChange != nil {
				onChange(ev)
			}
		}
	}
}
