// internal/domain/menu/service.go
package menu

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Service serves the read-only catalog document
type Service struct {
	path string

	mu    sync.RWMutex
	items []Item
	index map[string]Item
}

// NewService creates a catalog service backed by a JSON document
func NewService(path string) (*Service, error) {
	s := &Service{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the catalog document from disk. The previous catalog
// stays in place when the new document fails to load or validate.
func (s *Service) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read catalog document: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse catalog document: %w", err)
	}

	index := make(map[string]Item, len(items))
	for _, item := range items {
		if item.ID == "" {
			return fmt.Errorf("catalog item %q has no id", item.Name)
		}
		if _, exists := index[item.ID]; exists {
			return fmt.Errorf("duplicate catalog item id %q", item.ID)
		}
		if item.BasePrice < 0 {
			return fmt.Errorf("catalog item %q has a negative base price", item.ID)
		}
		index[item.ID] = item
	}

	s.mu.Lock()
	s.items = items
	s.index = index
	s.mu.Unlock()

	return nil
}

// Items returns all catalog items in document order
func (s *Service) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// ItemsByCategory returns the items belonging to a category, in document order
func (s *Service) ItemsByCategory(category string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []Item
	for _, item := range s.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

// Categories returns the distinct categories in first-appearance order
func (s *Service) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var categories []string
	seen := make(map[string]bool)
	for _, item := range s.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

// GetByID retrieves a catalog item by id
func (s *Service) GetByID(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.index[id]
	return item, ok
}

// Count returns the number of catalog items
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
