package account

import "errors"

var (
	ErrAccountNotFound   = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already exists")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrSubdomainTaken    = errors.New("subdomain already exists")
	ErrAccountInactive   = errors.New("account has been deactivated")
	ErrWrongPassword     = errors.New("current password is incorrect")
	ErrInvalidCredential = errors.New("invalid credentials")
)
