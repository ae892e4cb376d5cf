package dto

import (
	"time"

	"github.com/folio-hq/folio/internal/domain/account"
)

// UserDTO is the account as shown to its owner.
type UserDTO struct {
	ID                  uint       `json:"id"`
	Username            string     `json:"username"`
	Email               string     `json:"email"`
	FullName            string     `json:"fullName"`
	Subdomain           string     `json:"subdomain"`
	Subscription        string     `json:"subscription"`
	SubscriptionExpires *time.Time `json:"subscriptionExpires,omitempty"`
	IsEmailVerified     bool       `json:"isEmailVerified"`
	ProfilePicture      string     `json:"profilePicture"`
	IsActive            bool       `json:"isActive"`
	LastLoginAt         *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// PublicProfileDTO is the subset of an account visible on its public site.
type PublicProfileDTO struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	FullName       string    `json:"fullName"`
	Subdomain      string    `json:"subdomain"`
	Subscription   string    `json:"subscription"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AuthDTO is returned by register and login.
type AuthDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *UserDTO  `json:"user"`
}

// SubdomainAvailabilityDTO answers a subdomain availability check. Invalid
// is set when the name is malformed or reserved and is answered with 400.
type SubdomainAvailabilityDTO struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
	Invalid   bool   `json:"-"`
}

func ToUserDTO(a *account.Account) *UserDTO {
	if a == nil {
		return nil
	}
	return &UserDTO{
		ID:                  a.ID(),
		Username:            a.Username(),
		Email:               a.Email(),
		FullName:            a.FullName(),
		Subdomain:           a.Subdomain(),
		Subscription:        a.Tier().String(),
		SubscriptionExpires: a.TierExpiresAt(),
		IsEmailVerified:     a.EmailVerified(),
		ProfilePicture:      a.ProfilePicture(),
		IsActive:            a.IsActive(),
		LastLoginAt:         a.LastLoginAt(),
		CreatedAt:           a.CreatedAt(),
	}
}

func ToPublicProfileDTO(a *account.Account) *PublicProfileDTO {
	if a == nil {
		return nil
	}
	return &PublicProfileDTO{
		ID:             a.ID(),
		Username:       a.Username(),
		FullName:       a.FullName(),
		Subdomain:      a.Subdomain(),
		Subscription:   a.Tier().String(),
		ProfilePicture: a.ProfilePicture(),
		CreatedAt:      a.CreatedAt(),
	}
}
