// internal/domain/storefront/service.go
package storefront

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Service serves the business configuration document
type Service struct {
	path string

	mu  sync.RWMutex
	cfg Config
}

// NewService creates a storefront service backed by a JSON document
func NewService(path string) (*Service, error) {
	s := &Service{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the configuration document from disk. The previous
// configuration stays in place when the new document fails to load.
func (s *Service) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read storefront configuration: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse storefront configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return fmt.Errorf("storefront configuration invalid: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	return nil
}

// Config returns the current business configuration
func (s *Service) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Schedule returns the current schedule configuration, nil when unset
func (s *Service) Schedule() *ScheduleConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Schedule
}

func validate(cfg Config) error {
	if cfg.BusinessName == "" {
		return fmt.Errorf("businessName is required")
	}
	if cfg.WhatsAppNumber == "" {
		return fmt.Errorf("whatsappNumber is required")
	}
	if cfg.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if cfg.DeliveryFee < 0 {
		return fmt.Errorf("deliveryFee cannot be negative")
	}
	if cfg.MinOrder != nil && *cfg.MinOrder < 0 {
		return fmt.Errorf("minOrder cannot be negative")
	}
	return nil
}
