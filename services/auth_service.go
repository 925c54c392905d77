package services

import (
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

// AuthService hashes and checks customer and admin passwords.
type AuthService struct {
	cost int
}

func NewAuthService() *AuthService {
	return &AuthService{cost: bcrypt.DefaultCost}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a password against its bcrypt hash.
func (s *AuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AuthService) ValidatePassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var authService *AuthService

func GetAuthService() *AuthService {
	if authService == nil {
		authService = NewAuthService()
	}
	return authService
}

func HashPassword(password string) (string, error) {
	return GetAuthService().HashPassword(password)
}

func VerifyPassword(hash, password string) bool {
	return GetAuthService().VerifyPassword(hash, password)
}
