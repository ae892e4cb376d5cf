package subscription

import (
	"fmt"
	"time"

	"github.com/folio-hq/folio/internal/domain/entitlement"
)

const (
	// FreePeriod is the length of a free row.
	FreePeriod = 365 * 24 * time.Hour
	// ReactivationPeriod is the length granted when a cancelled row is revived.
	ReactivationPeriod = 30 * 24 * time.Hour
	// DefaultCurrency is used for every row.
	DefaultCurrency = entitlement.Currency
)

// Subscription is one billing period in an account's append-only ledger.
type Subscription struct {
	id            uint
	accountID     uint
	planID        entitlement.PlanID
	status        Status
	startDate     time.Time
	endDate       time.Time
	autoRenew     bool
	paymentMethod PaymentMethod
	paymentID     string
	amount        float64
	currency      string
	billingCycle  BillingCycle
	features      entitlement.Features
	metadata      Metadata
	createdAt     time.Time
	updatedAt     time.Time
}

// NewParams describes a freshly opened period.
type NewParams struct {
	AccountID    uint
	PlanID       entitlement.PlanID
	StartDate    time.Time
	EndDate      time.Time
	Payment      Payment
	Amount       float64
	BillingCycle BillingCycle
	Features     entitlement.Features
}

// NewSubscription opens an active period. Features is the snapshot frozen
// onto the row.
func NewSubscription(p NewParams) (*Subscription, error) {
	if p.AccountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if !p.PlanID.IsValid() {
		return nil, ErrInvalidPlan
	}
	if p.EndDate.Before(p.StartDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}
	method := p.Payment.Method
	if method == "" {
		method = PaymentFree
	}
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	cycle := p.BillingCycle
	if cycle == "" {
		cycle = CycleFree
	}
	if !cycle.IsValid() {
		return nil, ErrInvalidBillingCycle
	}

	now := time.Now().UTC()
	return &Subscription{
		accountID:     p.AccountID,
		planID:        p.PlanID,
		status:        StatusActive,
		startDate:     p.StartDate,
		endDate:       p.EndDate,
		autoRenew:     true,
		paymentMethod: method,
		paymentID:     p.Payment.ID,
		amount:        p.Amount,
		currency:      DefaultCurrency,
		billingCycle:  cycle,
		features:      p.Features,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// NewFreeSubscription opens a free period of FreePeriod starting at start.
func NewFreeSubscription(accountID uint, start time.Time, features entitlement.Features) (*Subscription, error) {
	return NewSubscription(NewParams{
		AccountID:    accountID,
		PlanID:       entitlement.PlanFree,
		StartDate:    start,
		EndDate:      start.Add(FreePeriod),
		Payment:      Payment{Method: PaymentFree},
		BillingCycle: CycleFree,
		Features:     features,
	})
}

// ReconstructParams carries persisted state back into a Subscription.
type ReconstructParams struct {
	ID            uint
	AccountID     uint
	PlanID        entitlement.PlanID
	Status        Status
	StartDate     time.Time
	EndDate       time.Time
	AutoRenew     bool
	PaymentMethod PaymentMethod
	PaymentID     string
	Amount        float64
	Currency      string
	BillingCycle  BillingCycle
	Features      entitlement.Features
	Metadata      Metadata
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructSubscription(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.AccountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}
	currency := p.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Subscription{
		id:            p.ID,
		accountID:     p.AccountID,
		planID:        p.PlanID,
		status:        p.Status,
		startDate:     p.StartDate,
		endDate:       p.EndDate,
		autoRenew:     p.AutoRenew,
		paymentMethod: p.PaymentMethod,
		paymentID:     p.PaymentID,
		amount:        p.Amount,
		currency:      currency,
		billingCycle:  p.BillingCycle,
		features:      p.Features,
		metadata:      p.Metadata,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                       { return s.id }
func (s *Subscription) AccountID() uint                { return s.accountID }
func (s *Subscription) PlanID() entitlement.PlanID     { return s.planID }
func (s *Subscription) Status() Status                 { return s.status }
func (s *Subscription) StartDate() time.Time           { return s.startDate }
func (s *Subscription) EndDate() time.Time             { return s.endDate }
func (s *Subscription) AutoRenew() bool                { return s.autoRenew }
func (s *Subscription) PaymentMethod() PaymentMethod   { return s.paymentMethod }
func (s *Subscription) PaymentID() string              { return s.paymentID }
func (s *Subscription) Amount() float64                { return s.amount }
func (s *Subscription) Currency() string               { return s.currency }
func (s *Subscription) BillingCycle() BillingCycle     { return s.billingCycle }
func (s *Subscription) Features() entitlement.Features { return s.features }
func (s *Subscription) Metadata() Metadata             { return s.metadata }
func (s *Subscription) CreatedAt() time.Time           { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time           { return s.updatedAt }

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subscription) SetMetadata(m Metadata) {
	s.metadata = m
}

// IsActive reports whether the row is active and has not reached its end date.
func (s *Subscription) IsActive(now time.Time) bool {
	return s.status == StatusActive && s.endDate.After(now)
}

// IsExpired reports whether the end date has passed.
func (s *Subscription) IsExpired(now time.Time) bool {
	return s.endDate.Before(now)
}

// Supersede marks an active row cancelled because a newer row replaces it.
func (s *Subscription) Supersede() {
	s.status = StatusCancelled
	s.updatedAt = time.Now().UTC()
}

// Cancel ends a paid active period, disabling auto-renew and recording reason.
func (s *Subscription) Cancel(reason string) error {
	if s.status != StatusActive {
		return ErrInvalidTransition(s.status, StatusCancelled)
	}
	if s.planID.IsFree() {
		return ErrCannotCancelFree
	}
	s.status = StatusCancelled
	s.autoRenew = false
	s.metadata.CancellationReason = reason
	s.updatedAt = time.Now().UTC()
	return nil
}

// MarkExpired flags an active row whose end date has passed.
func (s *Subscription) MarkExpired() error {
	if s.status != StatusActive {
		return ErrInvalidTransition(s.status, StatusExpired)
	}
	s.status = StatusExpired
	s.updatedAt = time.Now().UTC()
	return nil
}

// ReactivateParams overrides fields of a revived row. Empty values keep the
// row's current plan and payment.
type ReactivateParams struct {
	PlanID  entitlement.PlanID
	Payment Payment
}

// Reactivate flips a cancelled row back to active for ReactivationPeriod.
// features must be the snapshot for the resulting plan, see PlanAfterReactivation.
func (s *Subscription) Reactivate(p ReactivateParams, features entitlement.Features, now time.Time) error {
	if s.status != StatusCancelled {
		return ErrInvalidTransition(s.status, StatusActive)
	}
	if p.Payment.Method != "" && !p.Payment.Method.IsValid() {
		return ErrInvalidPaymentMethod
	}
	s.planID = s.PlanAfterReactivation(p)
	if p.Payment.Method != "" {
		s.paymentMethod = p.Payment.Method
	}
	if p.Payment.ID != "" {
		s.paymentID = p.Payment.ID
	}
	s.status = StatusActive
	s.autoRenew = true
	s.endDate = now.Add(ReactivationPeriod)
	s.features = features
	s.updatedAt = now
	return nil
}

// PlanAfterReactivation returns the plan the row will carry once revived with p.
func (s *Subscription) PlanAfterReactivation(p ReactivateParams) entitlement.PlanID {
	if p.PlanID != "" && p.PlanID.IsValid() {
		return p.PlanID
	}
	return s.planID
}
