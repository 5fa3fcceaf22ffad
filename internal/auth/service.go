package auth

import (
	"errors"
	"unicode/utf8"

	"github.com/900mahdi/mohasib3/internal/models"
	"github.com/900mahdi/mohasib3/internal/store"
)

// DefaultCredential is what an absent stored credential behaves as on first run.
const DefaultCredential = "1234"

// MinCredentialLength is the minimum accepted length for a new credential.
const MinCredentialLength = 4

var (
	ErrInvalidCredential      = errors.New("invalid credential")
	ErrWrongCurrentCredential = errors.New("wrong current credential")
	ErrMismatchedConfirmation = errors.New("mismatched confirmation")
	ErrCredentialTooShort     = errors.New("credential too short")
)

// Session is transient: it lives only inside the signed token, is recreated on
// every successful authentication and destroyed by discarding the token.
type Session struct {
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

// Service gates access to the rest of the application. The credential is a
// single shared secret compared as plain text; this is deliberately not a
// security boundary.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) storedCredential() (string, error) {
	secret, found, err := s.store.LoadCredential()
	if err != nil {
		return "", err
	}
	if !found {
		return DefaultCredential, nil
	}
	return secret, nil
}

// Authenticate succeeds iff the submitted secret equals the stored one. The
// session carries the selected role and its role-derived display name. There
// is no lockout or rate limiting.
func (s *Service) Authenticate(submitted string, role models.UserRole) (*Session, error) {
	stored, err := s.storedCredential()
	if err != nil {
		return nil, err
	}
	if submitted != stored {
		return nil, ErrInvalidCredential
	}
	return &Session{Username: role.DisplayName(), Role: role}, nil
}

// AuthenticateByBiometric is a demo bypass, not real verification: it always
// produces a merchant session. The caller applies the simulated delay.
func (s *Service) AuthenticateByBiometric() *Session {
	return &Session{
		Username: "التاجر (بصمة)",
		Role:     models.RoleMerchant,
	}
}

// ChangeCredential validates and overwrites the stored credential.
func (s *Service) ChangeCredential(current, newSecret, confirm string) error {
	stored, err := s.storedCredential()
	if err != nil {
		return err
	}
	if current != stored {
		return ErrWrongCurrentCredential
	}
	if newSecret != confirm {
		return ErrMismatchedConfirmation
	}
	if utf8.RuneCountInString(newSecret) < MinCredentialLength {
		return ErrCredentialTooShort
	}
	return s.store.SaveCredential(newSecret)
}
