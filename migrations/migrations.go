// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_create_accounts",
			Migrate: func(tx *gorm.DB) error {
				// Snapshot of the accounts table at the time of this
				// migration; later schema changes get their own entries.
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
				return tx.AutoMigrate(&Account{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("accounts")
			},
		},
	}
}
