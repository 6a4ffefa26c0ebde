package services

import (
	"crypto/subtle"

	"neighborhood-stories/config"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks a caller-supplied credential against the single admin
// secret. There are no accounts and no sessions; every admin call re-sends
// the raw password.
type AuthService interface {
	Verify(password string) bool
}

type authService struct {
	password     string
	passwordHash string
}

func NewAuthService(cfg config.AdminConfig) AuthService {
	return &authService{
		password:     cfg.Password,
		passwordHash: cfg.PasswordHash,
	}
}

func (s *authService) Verify(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	if s.password == "" {
		// No secret configured means nothing can authenticate.
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}
