// internal/pkg/idgen/idgen.go
package idgen

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator produces globally-unique cart line ids. It is injected so
// tests can supply a deterministic implementation.
type Generator interface {
	NewID() string
}

// UUIDGenerator generates random UUIDs, falling back to a
// timestamp-plus-random suffix when the random source is unavailable.
type UUIDGenerator struct{}

// NewID returns a fresh unique id
func (UUIDGenerator) NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("item_%d_%x", time.Now().UnixMilli(), rand.Int63())
	}
	return id.String()
}

// Sequence is a deterministic Generator for tests: prefix-1, prefix-2, ...
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

// NewID returns the next id in the sequence
func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}
