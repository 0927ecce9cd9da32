package crypto

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"

	"github.com/booklend/booklend/internal/domain/service"
	"github.com/booklend/booklend/pkg/helpers"
)

// Service bundles password hashing, id generation, and verification
// token generation behind service.CryptoService.
type Service struct{}

func New() *Service { return &Service{} }

func (Service) HashPassword(password string) (string, error) {
	return helpers.HashPassword(password)
}

func (Service) ComparePassword(password, hash string) bool {
	return helpers.CompareHashAndPassword(hash, password)
}

func (Service) GenerateUUID() string {
	return uuid.NewString()
}

// GenerateRandomToken returns 32 bytes of entropy as URL-safe base64.
func (Service) GenerateRandomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

var _ service.CryptoService = (*Service)(nil)
