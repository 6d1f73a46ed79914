// internal/pkg/auth/key.go
package auth

import (
	"fmt"

	"github.com/your-org/menu-storefront/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// KeyManager verifies the operator key against its configured bcrypt hash
type KeyManager struct {
	config *config.Config
}

// NewKeyManager creates a new key manager
func NewKeyManager(cfg *config.Config) *KeyManager {
	return &KeyManager{
		config: cfg,
	}
}

// HashKey hashes an operator key using bcrypt
func (k *KeyManager) HashKey(key string) (string, error) {
	if len(key) < 8 {
		return "", fmt.Errorf("operator key must be at least 8 characters long")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(key), k.config.Security.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash key: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyKey verifies an operator key against the configured hash
func (k *KeyManager) VerifyKey(key string) error {
	if k.config.Admin.KeyHash == "" {
		return fmt.Errorf("no operator key configured")
	}
	return bcrypt.CompareHashAndPassword([]byte(k.config.Admin.KeyHash), []byte(key))
}
