// SPDX-License-Identifier: GPL-3.0-only

package db

import (
	"errors"
	"time"

	"greetme-server/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrTelephoneTaken  = errors.New("telephone number already registered")
)

// AccountStore exposes the typed record operations the lifecycle manager
// needs. All email lookups normalize their argument first.
type AccountStore struct {
	conn *gorm.DB
}

func NewAccountStore(conn *gorm.DB) *AccountStore {
	return &AccountStore{conn: conn}
}

// FindByEmailOrTelephone returns the account holding either value. The
// email lookup runs first so an email collision is reported ahead of a
// telephone collision when both exist.
func (s *AccountStore) FindByEmailOrTelephone(email, telephone string) (*models.Account, error) {
	acct, err := s.FindByEmail(email)
	if err == nil {
		return acct, nil
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, err
	}

	var byPhone models.Account
	err = s.conn.Where("telephone = ?", telephone).First(&byPhone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &byPhone, nil
}

func (s *AccountStore) FindByEmail(email string) (*models.Account, error) {
	var acct models.Account
	err := s.conn.Where("email = ?", models.NormalizeEmail(email)).First(&acct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// FindByEmailAndToken returns the unverified account matching both the
// email and its outstanding verification token.
func (s *AccountStore) FindByEmailAndToken(email, token string) (*models.Account, error) {
	var acct models.Account
	err := s.conn.Where("email = ? AND verification_token = ? AND is_verified = ?",
		models.NormalizeEmail(email), token, false).First(&acct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &acct, nil
}

func (s *AccountStore) FindByID(id uint) (*models.Account, error) {
	var acct models.Account
	err := s.conn.First(&acct, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// FindVerifiedByID only sees verified accounts; unverified records are
// invisible through this lookup.
func (s *AccountStore) FindVerifiedByID(id uint) (*models.Account, error) {
	var acct models.Account
	err := s.conn.Where("id = ? AND is_verified = ?", id, true).First(&acct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// Insert persists a new account. The unique indexes on email and
// telephone turn a concurrent duplicate registration into one success and
// one conflict error, so a check-then-insert race cannot create two rows.
func (s *AccountStore) Insert(acct *models.Account) error {
	acct.Email = models.NormalizeEmail(acct.Email)
	if err := s.conn.Create(acct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, lookupErr := s.FindByEmail(acct.Email); lookupErr == nil {
				return ErrEmailTaken
			}
			return ErrTelephoneTaken
		}
		return err
	}
	return nil
}

// MarkVerified performs the unverified-to-verified transition as a single
// guarded update: it only matches a currently unverified account whose
// email and token both agree, and clears the token in the same statement.
// No matching row means the account is absent, already verified, or the
// token is stale; those cases are indistinguishable here.
func (s *AccountStore) MarkVerified(email, token string) (*models.Account, error) {
	res := s.conn.Model(&models.Account{}).
		Where("email = ? AND verification_token = ? AND is_verified = ?",
			models.NormalizeEmail(email), token, false).
		Updates(map[string]any{
			"is_verified":        true,
			"verification_token": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAccountNotFound
	}
	return s.FindByEmail(email)
}

func (s *AccountStore) TouchUpdatedAt(id uint) error {
	return s.conn.Model(&models.Account{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}
