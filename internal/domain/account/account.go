package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/tenancy"
)

// TierRenewal is how far ahead the tier expiry moves when an expired paid
// tier is downgraded to free.
const TierRenewal = 365 * 24 * time.Hour

// Account is the identity and tenancy unit. It owns a subdomain and every
// content record rendered under it.
type Account struct {
	id                     uint
	username               string
	email                  string
	subdomain              string
	passwordHash           string
	fullName               string
	profilePicture         string
	isActive               bool
	tier                   entitlement.PlanID
	tierExpiresAt          *time.Time
	emailVerified          bool
	emailVerificationToken string
	lastLoginAt            *time.Time
	createdAt              time.Time
	updatedAt              time.Time
}

// ReconstructParams carries persisted state back into an Account.
type ReconstructParams struct {
	ID                     uint
	Username               string
	Email                  string
	Subdomain              string
	PasswordHash           string
	FullName               string
	ProfilePicture         string
	IsActive               bool
	Tier                   entitlement.PlanID
	TierExpiresAt          *time.Time
	EmailVerified          bool
	EmailVerificationToken string
	LastLoginAt            *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewAccount creates an active free-tier account. The subdomain is stored
// lowercased; callers validate it against the reserved set beforehand.
func NewAccount(username, email, subdomain, passwordHash, fullName string) (*Account, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	subdomain = tenancy.NormalizeSubdomain(subdomain)

	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !tenancy.IsWellFormedSubdomain(subdomain) {
		return nil, tenancy.ErrInvalidSubdomain
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &Account{
		username:     username,
		email:        email,
		subdomain:    subdomain,
		passwordHash: passwordHash,
		fullName:     strings.TrimSpace(fullName),
		isActive:     true,
		tier:         entitlement.PlanFree,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAccount rebuilds an account from persistence.
func ReconstructAccount(p ReconstructParams) (*Account, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	tier := p.Tier
	if !tier.IsValid() {
		tier = entitlement.PlanFree
	}
	return &Account{
		id:                     p.ID,
		username:               p.Username,
		email:                  p.Email,
		subdomain:              p.Subdomain,
		passwordHash:           p.PasswordHash,
		fullName:               p.FullName,
		profilePicture:         p.ProfilePicture,
		isActive:               p.IsActive,
		tier:                   tier,
		tierExpiresAt:          p.TierExpiresAt,
		emailVerified:          p.EmailVerified,
		emailVerificationToken: p.EmailVerificationToken,
		lastLoginAt:            p.LastLoginAt,
		createdAt:              p.CreatedAt,
		updatedAt:              p.UpdatedAt,
	}, nil
}

func (a *Account) ID() uint                       { return a.id }
func (a *Account) Username() string               { return a.username }
func (a *Account) Email() string                  { return a.email }
func (a *Account) Subdomain() string              { return a.subdomain }
func (a *Account) PasswordHash() string           { return a.passwordHash }
func (a *Account) FullName() string               { return a.fullName }
func (a *Account) ProfilePicture() string         { return a.profilePicture }
func (a *Account) IsActive() bool                 { return a.isActive }
func (a *Account) Tier() entitlement.PlanID       { return a.tier }
func (a *Account) TierExpiresAt() *time.Time      { return a.tierExpiresAt }
func (a *Account) EmailVerified() bool            { return a.emailVerified }
func (a *Account) EmailVerificationToken() string { return a.emailVerificationToken }
func (a *Account) LastLoginAt() *time.Time        { return a.lastLoginAt }
func (a *Account) CreatedAt() time.Time           { return a.createdAt }
func (a *Account) UpdatedAt() time.Time           { return a.updatedAt }

// SetID assigns the storage id after the first insert.
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Account) RecordLogin(at time.Time) {
	a.lastLoginAt = &at
	a.updatedAt = at
}

// UpdateProfile applies non-empty fields. Email uniqueness is checked by the caller.
func (a *Account) UpdateProfile(fullName, email, profilePicture *string) {
	if fullName != nil {
		a.fullName = strings.TrimSpace(*fullName)
	}
	if email != nil && strings.TrimSpace(*email) != "" {
		a.email = strings.ToLower(strings.TrimSpace(*email))
	}
	if profilePicture != nil {
		a.profilePicture = *profilePicture
	}
	a.updatedAt = time.Now().UTC()
}

func (a *Account) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	a.passwordHash = hash
	a.updatedAt = time.Now().UTC()
	return nil
}

func (a *Account) SetActive(active bool) {
	a.isActive = active
	a.updatedAt = time.Now().UTC()
}

func (a *Account) SetVerificationToken(token string) {
	a.emailVerificationToken = token
}

// SyncTier mirrors the current subscription onto the account's cached tier.
func (a *Account) SyncTier(plan entitlement.PlanID, expiresAt time.Time) {
	a.tier = plan
	a.tierExpiresAt = &expiresAt
	a.updatedAt = time.Now().UTC()
}

// TierExpired reports whether a paid tier has passed its expiry at now.
func (a *Account) TierExpired(now time.Time) bool {
	return !a.tier.IsFree() && a.tierExpiresAt != nil && a.tierExpiresAt.Before(now)
}

// DowngradeIfExpired moves an expired paid tier to free with a fresh one
// year expiry. It returns false and changes nothing when the tier is still
// valid, so repeated calls are idempotent.
func (a *Account) DowngradeIfExpired(now time.Time) bool {
	if !a.TierExpired(now) {
		return false
	}
	a.SyncTier(entitlement.PlanFree, now.Add(TierRenewal))
	return true
}
