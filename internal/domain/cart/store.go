// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/menu-storefront/internal/infrastructure/storage"
)

// Store owns the ordered list of cart lines for one session. Every
// mutation writes the full list through to the persistence collaborator;
// the in-memory list stays the source of truth, so a failed write never
// rolls back a mutation or surfaces to the caller.
type Store struct {
	storage storage.Store
	key     string
	logger  *logrus.Logger

	mu    sync.Mutex
	items []Item
}

// NewStore creates a cart store bound to a persistence key. Prior state
// is loaded from the collaborator; absent or corrupt data yields an
// empty cart.
func NewStore(st storage.Store, key string, logger *logrus.Logger) *Store {
	s := &Store{
		storage: st,
		key:     key,
		logger:  logger,
	}
	s.load()
	return s
}

// Items returns a copy of the cart lines in insertion order
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of cart lines
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Add appends a line. Lines are never merged: two adds with identical
// product and selections stay distinct.
func (s *Store) Add(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
	s.persist()
}

// Update replaces the line with a matching cartItemId. No-op when the
// id is not present.
func (s *Store) Update(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].CartItemID == item.CartItemID {
			s.items[i] = item
			s.persist()
			return
		}
	}
}

// Remove deletes the line with a matching cartItemId. No-op when the
// id is not present.
func (s *Store) Remove(cartItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].CartItemID == cartItemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the cart
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Get retrieves a line by cartItemId
func (s *Store) Get(cartItemID string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.CartItemID == cartItemID {
			return item, true
		}
	}
	return Item{}, false
}

func (s *Store) load() {
	data, err := s.storage.Get(context.Background(), s.key)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.WithError(err).WithField("key", s.key).
				Warn("Cart state unavailable, starting with empty cart")
		}
		return
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.WithError(err).WithField("key", s.key).
			Warn("Cart state corrupt, starting with empty cart")
		return
	}

	s.items = items
}

// persist is best-effort durability; callers hold s.mu.
func (s *Store) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).
			Warn("Failed to serialize cart state")
		return
	}

	if err := s.storage.Set(context.Background(), s.key, data); err != nil {
		s.logger.WithError(err).WithField("key", s.key).
			Warn("Failed to persist cart state, continuing in memory")
	}
}
