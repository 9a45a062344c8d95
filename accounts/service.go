// SPDX-License-Identifier: GPL-3.0-only

// Package accounts implements the account lifecycle: registration,
// email verification and login. An account moves from unverified to
// verified exactly once; there is no transition back.
package accounts

import (
	"errors"
	"fmt"
	"strings"

	"greetme-server/crypto"
	"greetme-server/db"
	"greetme-server/models"
)

// Notifier delivers fire-and-forget account notices. Implementations must
// never block registration or verification on delivery.
type Notifier interface {
	SendVerification(email, token string)
	SendWelcome(email, name string)
}

type Service struct {
	store    *db.AccountStore
	crypto   *crypto.Crypto
	notifier Notifier
}

func NewService(store *db.AccountStore, c *crypto.Crypto, notifier Notifier) *Service {
	return &Service{
		store:    store,
		crypto:   c,
		notifier: notifier,
	}
}

type RegisterInput struct {
	Name      string
	Telephone string
	Email     string
	Nickname  string
	Password  string
}

// Register validates the input, enforces email/telephone uniqueness and
// persists a new unverified account with a fresh verification token. An
// email collision is reported ahead of a telephone collision when both
// exist. Returns the new account id.
func (s *Service) Register(in RegisterInput) (uint, error) {
	if err := validateRegistration(in); err != nil {
		return 0, err
	}

	email := models.NormalizeEmail(in.Email)
	telephone := strings.TrimSpace(in.Telephone)

	existing, err := s.store.FindByEmailOrTelephone(email, telephone)
	if err == nil {
		if existing.Email == email {
			return 0, db.ErrEmailTaken
		}
		return 0, db.ErrTelephoneTaken
	}
	if !errors.Is(err, db.ErrAccountNotFound) {
		return 0, fmt.Errorf("uniqueness check failed: %w", err)
	}

	hash, err := s.crypto.HashPassword(in.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return 0, fmt.Errorf("failed to generate verification token: %w", err)
	}

	acct := &models.Account{
		Name:              strings.TrimSpace(in.Name),
		Nickname:          strings.TrimSpace(in.Nickname),
		Telephone:         telephone,
		Email:             email,
		PasswordHash:      hash,
		IsVerified:        false,
		VerificationToken: &token,
	}
	if err := s.store.Insert(acct); err != nil {
		return 0, err
	}

	s.notifier.SendVerification(acct.Email, token)

	return acct.ID, nil
}

// Verify confirms email ownership. The transition only happens for a
// currently unverified account whose email and token both match; every
// other case fails identically with ErrNotFoundOrAlreadyVerified and
// leaves no partial update behind.
func (s *Service) Verify(email, token string) (*models.Account, error) {
	if email == "" || token == "" {
		return nil, &ValidationError{Message: "Missing verification token or email."}
	}

	acct, err := s.store.MarkVerified(email, token)
	if err != nil {
		if errors.Is(err, db.ErrAccountNotFound) {
			return nil, ErrNotFoundOrAlreadyVerified
		}
		return nil, fmt.Errorf("verification failed: %w", err)
	}

	s.notifier.SendWelcome(acct.Email, acct.Name)

	return acct, nil
}

// Login authenticates a verified account. An unknown email and a wrong
// password both return ErrInvalidCredentials; an unverified account gets
// the more specific ErrUnverifiedAccount. On success UpdatedAt is touched
// and the account is returned. No session or token is issued.
func (s *Service) Login(email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Email and password are required."}
	}

	acct, err := s.store.FindByEmail(email)
	if err != nil {
		if errors.Is(err, db.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}

	if !acct.IsVerified {
		return nil, ErrUnverifiedAccount
	}

	if err := s.crypto.VerifyPassword(password, acct.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.store.TouchUpdatedAt(acct.ID); err != nil {
		return nil, fmt.Errorf("failed to update login timestamp: %w", err)
	}

	return acct, nil
}

// Profile returns an account for public display. Unverified accounts are
// invisible here and report db.ErrAccountNotFound.
func (s *Service) Profile(id uint) (*models.Account, error) {
	return s.store.FindVerifiedByID(id)
}
