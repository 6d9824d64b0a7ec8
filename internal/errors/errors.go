package errors

import (
	"errors"
)

var (
	ErrMissingFields      = errors.New("please fill in all required fields")
	ErrInvalidEmail       = errors.New("please enter a valid email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnknownTier        = errors.New("unknown membership tier")
	ErrMissingMemberID    = errors.New("member identifier is required")
	ErrNoPendingDelete    = errors.New("no delete pending confirmation")
)
