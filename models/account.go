// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"strings"
	"time"
)

var AllModels []any

// Account is a registered user record. Email and telephone are unique
// across all accounts; VerificationToken is nil exactly when the account
// is verified.
type Account struct {
	ID                uint    `gorm:"primaryKey"`
	Name              string  `gorm:"not null"`
	Nickname          string  `gorm:"not null"`
	Telephone         string  `gorm:"not null;uniqueIndex"`
	Email             string  `gorm:"not null;uniqueIndex"`
	PasswordHash      string  `gorm:"not null"`
	IsVerified        bool    `gorm:"not null;default:false"`
	VerificationToken *string `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NormalizeEmail lower-cases and trims an email address. Applied at every
// write and lookup so stored values stay exact-match comparable.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func init() {
	AllModels = append(AllModels, &Account{})
}
