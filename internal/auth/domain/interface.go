package domain

import "context"

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (bool, error)
}

// LoginResult is the identity the record service returns for valid
// credentials.
type LoginResult struct {
	UserID string
	Name   string
	Email  string
	Role   string
	Token  string
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// ProfileStore persists a single profile record. Failures are reported
// as a boolean so callers can degrade to "no session" instead of failing.
type ProfileStore interface {
	Save(profile *Profile) bool
	Load() *Profile
	Clear() bool
}
