package models

import (
	"time"

	"github.com/folio-hq/folio/internal/shared/constants"
)

// AccountModel is the persistence shape of an account.
type AccountModel struct {
	ID                     uint   `gorm:"primarykey"`
	Username               string `gorm:"uniqueIndex;not null;size:50"`
	Email                  string `gorm:"uniqueIndex;not null;size:255"`
	Subdomain              string `gorm:"uniqueIndex;not null;size:63"`
	PasswordHash           string `gorm:"not null;size:255"`
	FullName               string `gorm:"size:100"`
	ProfilePicture         string `gorm:"size:500"`
	IsActive               bool   `gorm:"not null;default:true;index:idx_accounts_active"`
	Tier                   string `gorm:"not null;size:20;default:free;index:idx_accounts_tier"`
	TierExpiresAt          *time.Time
	EmailVerified          bool   `gorm:"not null;default:false"`
	EmailVerificationToken string `gorm:"size:64"`
	LastLoginAt            *time.Time
	CreatedAt              time.Time `gorm:"index:idx_accounts_created_at"`
	UpdatedAt              time.Time
}

func (AccountModel) TableName() string {
	return constants.TableAccounts
}
