// internal/session/store.go
package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"platemap-core/index"
)

var ErrNotFound = errors.New("session not found")

type entry struct {
	mu       sync.Mutex
	s        *Session
	lastUsed time.Time
}

// Store owns many sessions. Each session is used by one caller at a time;
// the index table is shared read-only by all of them.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	table   *index.Table
	ttl     time.Duration // 0 = never expire
	now     func() time.Time
	log     *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTTL evicts sessions idle for longer than d. Expiry is checked lazily.
func WithTTL(d time.Duration) StoreOption { return func(s *Store) { s.ttl = d } }

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) StoreOption { return func(s *Store) { s.now = now } }

func WithLogger(l *slog.Logger) StoreOption { return func(s *Store) { s.log = l } }

func NewStore(tab *index.Table, opts ...StoreOption) *Store {
	st := &Store{
		entries: map[string]*entry{},
		table:   tab,
		now:     time.Now,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(st)
	}
	return st
}

// Create starts a new empty session and returns its ID.
func (st *Store) Create() string {
	id := uuid.NewString()
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweepLocked()
	st.entries[id] = &entry{s: New(id, st.table), lastUsed: st.now()}
	st.log.Debug("session created", "id", id, "open", len(st.entries))
	return id
}

// Do runs fn with exclusive access to the session.
func (st *Store) Do(id string, fn func(*Session) error) error {
	st.mu.Lock()
	st.sweepLocked()
	e, ok := st.entries[id]
	st.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	err := fn(e.s)
	st.mu.Lock()
	e.lastUsed = st.now()
	st.mu.Unlock()
	return err
}

// Delete drops a session; it reports whether it existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.entries[id]
	delete(st.entries, id)
	if ok {
		st.log.Debug("session deleted", "id", id)
	}
	return ok
}

// Len counts live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweepLocked()
	return len(st.entries)
}

func (st *Store) sweepLocked() {
	if st.ttl <= 0 {
		return
	}
	cutoff := st.now().Add(-st.ttl)
	for id, e := range st.entries {
		if e.lastUsed.Before(cutoff) {
			delete(st.entries, id)
			st.log.Info("session expired", "id", id)
		}
	}
}
