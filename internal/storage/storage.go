package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/feed"
	"github.com/chris-regnier/moodmemo/internal/logger"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound   = errors.New("entry not found")
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
	// ErrNoBlob is returned by Backend.Get when nothing is stored under the key.
	ErrNoBlob = errors.New("no stored collection")
)

// DefaultKey is the slot holding the serialized entry collection.
const DefaultKey = "mood-diary-entries"

const updatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Backend is the storage medium: a single named slot holding one blob.
type Backend interface {
	// Get returns the blob stored under key, or ErrNoBlob if absent.
	Get(key string) ([]byte, error)
	// Set replaces the blob stored under key.
	Set(key string, data []byte) error
	Close() error
}

// Store is the entry store. The whole collection lives in one serialized
// JSON array; every write reads the collection, mutates it in memory, and
// writes it back. Writes from other processes are last-write-wins.
type Store struct {
	mu      sync.Mutex
	backend Backend
	key     string
	now     func() time.Time
	log     logger.Logger
	pub     feed.Publisher
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the slot name.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock overrides the clock used for UpdatedAt and default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for degraded reads and feed failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithPublisher sends a change event after every successful write.
func WithPublisher(p feed.Publisher) Option {
	return func(s *Store) { s.pub = p }
}

// New creates a Store over the given backend.
func New(b Backend, opts ...Option) *Store {
	s := &Store{
		backend: b,
		key:     DefaultKey,
		now:     time.Now,
		log:     logger.Nop(),
		pub:     feed.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// load reads and decodes the collection. An absent slot is an empty
// collection, not an error.
func (s *Store) load() ([]entry.Entry, error) {
	data, err := s.backend.Get(s.key)
	if err != nil {
		if errors.Is(err, ErrNoBlob) {
			return []entry.Entry{}, nil
		}
		return nil, fmt.Errorf("%w: reading collection: %v", ErrStorage, err)
	}
	if len(data) == 0 {
		return []entry.Entry{}, nil
	}
	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: decoding collection: %v", ErrStorage, err)
	}
	if entries == nil {
		entries = []entry.Entry{}
	}
	return entries, nil
}

func (s *Store) persist(entries []entry.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: encoding collection: %v", ErrStorage, err)
	}
	if err := s.backend.Set(s.key, data); err != nil {
		return fmt.Errorf("%w: writing collection: %v", ErrStorage, err)
	}
	return nil
}

// GetAll returns every entry in stored order. Unreadable or corrupt storage
// yields an empty slice.
func (s *Store) GetAll() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		s.log.Warn("loading entries failed, treating collection as empty",
			logger.String("key", s.key), logger.Error(err))
		return []entry.Entry{}
	}
	return entries
}

// GetByID returns the entry with the given id.
func (s *Store) GetByID(id string) (entry.Entry, bool) {
	for _, e := range s.GetAll() {
		if e.ID == id {
			return e, true
		}
	}
	return entry.Entry{}, false
}

// Save creates or replaces an entry and returns it as persisted.
//
// An empty ID creates a new entry with a generated ID. A non-empty ID
// replaces the matching entry in place (a full replace, not a merge); if no
// entry matches, it is appended as new. UpdatedAt is stamped on every save and
// an empty Date defaults to today.
func (s *Store) Save(e entry.Entry) (entry.Entry, error) {
	if err := entry.ValidateRequired(e); err != nil {
		return entry.Entry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return entry.Entry{}, err
	}

	now := s.now()
	if e.Date == "" {
		e.Date = now.Format(entry.DateLayout)
	}
	e.UpdatedAt = now.UTC().Format(updatedAtLayout)

	evType := feed.Update
	if e.ID == "" {
		id, err := entry.NewID()
		if err != nil {
			return entry.Entry{}, fmt.Errorf("%w: generating entry ID: %v", ErrStorage, err)
		}
		e.ID = id
		entries = append(entries, e)
		evType = feed.Insert
	} else if i := indexOf(entries, e.ID); i >= 0 {
		entries[i] = e
	} else {
		entries = append(entries, e)
		evType = feed.Insert
	}

	if err := s.persist(entries); err != nil {
		return entry.Entry{}, err
	}

	saved := e
	s.publish(feed.Event{Type: evType, New: &saved})
	return e, nil
}

// Delete removes every entry with the given id. Deleting an unknown id is a
// no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	var removed *entry.Entry
	for _, e := range entries {
		if e.ID == id {
			old := e
			removed = &old
			continue
		}
		kept = append(kept, e)
	}

	if err := s.persist(kept); err != nil {
		return err
	}
	if removed != nil {
		s.publish(feed.Event{Type: feed.Delete, Old: removed})
	}
	return nil
}

// Replace overwrites the whole collection without reading it first. It is
// the recovery path when the stored blob is corrupt.
func (s *Store) Replace(entries []entry.Entry) error {
	if err := validateBatch(entries, nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entries == nil {
		entries = []entry.Entry{}
	}
	return s.persist(entries)
}

// Append adds entries that already carry ids to the end of the collection in
// one write. Like Save, it fails rather than overwrite a collection it could
// not read. No change events are published.
func (s *Store) Append(entries []entry.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return err
	}
	if err := validateBatch(entries, existing); err != nil {
		return err
	}
	return s.persist(append(existing, entries...))
}

// validateBatch checks that every entry has an id unique across the batch and
// existing, and carries the required fields.
func validateBatch(entries, existing []entry.Entry) error {
	seen := make(map[string]bool, len(entries)+len(existing))
	for _, e := range existing {
		seen[e.ID] = true
	}
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("%w: entry without id", ErrValidation)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: duplicate id %s", ErrValidation, e.ID)
		}
		seen[e.ID] = true
		if err := entry.ValidateRequired(e); err != nil {
			return fmt.Errorf("%w: entry %s: %w", ErrValidation, e.ID, err)
		}
	}
	return nil
}

func (s *Store) publish(ev feed.Event) {
	ev.At = s.now().UTC()
	if err := s.pub.Publish(ev); err != nil {
		s.log.Warn("publishing change event failed",
			logger.String("type", string(ev.Type)), logger.Error(err))
	}
}

func indexOf(entries []entry.Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
