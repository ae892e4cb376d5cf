package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/folio-hq/folio/internal/shared/constants"
)

// SubscriptionModel is one row of the subscription ledger. Features holds
// the plan snapshot taken when the row was opened.
type SubscriptionModel struct {
	ID            uint      `gorm:"primarykey"`
	AccountID     uint      `gorm:"not null;index:idx_subscriptions_account"`
	PlanID        string    `gorm:"not null;size:20"`
	Status        string    `gorm:"not null;size:20;index:idx_subscriptions_status"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       time.Time `gorm:"not null;index:idx_subscriptions_end_date"`
	AutoRenew     bool      `gorm:"not null;default:true"`
	PaymentMethod string    `gorm:"not null;size:20;default:free"`
	PaymentID     string    `gorm:"size:255"`
	Amount        float64   `gorm:"not null;default:0"`
	Currency      string    `gorm:"not null;size:3;default:USD"`
	BillingCycle  string    `gorm:"not null;size:20;default:free"`
	Features      datatypes.JSON
	Metadata      datatypes.JSON
	CreatedAt     time.Time `gorm:"index:idx_subscriptions_created_at"`
	UpdatedAt     time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
