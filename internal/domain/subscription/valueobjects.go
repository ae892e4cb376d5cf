package subscription

import "time"

// Status is the lifecycle state of a subscription row.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
	StatusPending   Status = "pending"
)

var validStatuses = map[Status]bool{
	StatusActive:    true,
	StatusCancelled: true,
	StatusExpired:   true,
	StatusPending:   true,
}

func (s Status) String() string { return string(s) }
func (s Status) IsValid() bool  { return validStatuses[s] }

// PaymentMethod records how a period was (nominally) settled.
type PaymentMethod string

const (
	PaymentStripe       PaymentMethod = "stripe"
	PaymentPayPal       PaymentMethod = "paypal"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentFree         PaymentMethod = "free"
)

var validPaymentMethods = map[PaymentMethod]bool{
	PaymentStripe:       true,
	PaymentPayPal:       true,
	PaymentBankTransfer: true,
	PaymentFree:         true,
}

func (p PaymentMethod) IsValid() bool { return validPaymentMethods[p] }

// BillingCycle is the length of a paid period.
type BillingCycle string

const (
	CycleMonthly  BillingCycle = "monthly"
	CycleYearly   BillingCycle = "yearly"
	CycleLifetime BillingCycle = "lifetime"
	CycleFree     BillingCycle = "free"
)

var validCycles = map[BillingCycle]bool{
	CycleMonthly:  true,
	CycleYearly:   true,
	CycleLifetime: true,
	CycleFree:     true,
}

func (c BillingCycle) IsValid() bool { return validCycles[c] }

// IsPurchasable reports whether an upgrade may use c.
func (c BillingCycle) IsPurchasable() bool {
	return c == CycleMonthly || c == CycleYearly
}

// AddTo returns the end of a period of length c starting at t. Cycles
// without a fixed length return t unchanged.
func (c BillingCycle) AddTo(t time.Time) time.Time {
	switch c {
	case CycleMonthly:
		return t.AddDate(0, 1, 0)
	case CycleYearly:
		return t.AddDate(1, 0, 0)
	default:
		return t
	}
}

// Metadata is free-form bookkeeping stored alongside a row.
type Metadata struct {
	UpgradeReason      string `json:"upgradeReason,omitempty"`
	PromoCode          string `json:"promoCode,omitempty"`
	ReferralCode       string `json:"referralCode,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// Payment describes the settlement reference of a paid period.
type Payment struct {
	Method PaymentMethod
	ID     string
}
