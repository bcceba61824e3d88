package game

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound reports an absent session. A syntactically invalid identifier
// is treated identically to an absent one and never surfaced as a distinct
// error.
var ErrNotFound = errors.New("game session not found")

// Store exposes session persistence for HTTP handlers. Sessions are written
// once and never updated.
type Store interface {
	Create(ctx context.Context, session Session) (string, error)
	FindAll(ctx context.Context) ([]StoredSession, error)
	FindByID(ctx context.Context, id string) (StoredSession, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// ISOTimestamp is the layout of stored timestamps: ISO-8601 with millisecond
// precision, rendered with a literal Z in UTC.
const ISOTimestamp = "2006-01-02T15:04:05.000Z07:00"

// Now returns the current time formatted for storage.
func Now() string {
	return time.Now().UTC().Format(ISOTimestamp)
}

// MemoryStore implements Store with an in-memory map, suitable for tests and
// local runs without a database. Identifiers follow the same hex key format
// as the document store so malformed-id handling matches.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	items map[string]StoredSession
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]StoredSession)}
}

// Create stores the session under a fresh identifier.
func (s *MemoryStore) Create(_ context.Context, session Session) (string, error) {
	now := Now()
	record := StoredSession{
		ID:        primitive.NewObjectID().Hex(),
		Session:   session,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.order = append(s.order, record.ID)
	s.items[record.ID] = record
	s.mu.Unlock()

	return record.ID, nil
}

// FindAll returns every stored session in insertion order.
func (s *MemoryStore) FindAll(_ context.Context) ([]StoredSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]StoredSession, 0, len(s.order))
	for _, id := range s.order {
		sessions = append(sessions, s.items[id])
	}
	return sessions, nil
}

// FindByID looks up a session by identifier.
func (s *MemoryStore) FindByID(_ context.Context, id string) (StoredSession, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return StoredSession{}, ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.items[id]
	if !ok {
		return StoredSession{}, ErrNotFound
	}
	return record, nil
}

// DeleteByID removes a session, reporting whether a record was present.
func (s *MemoryStore) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
