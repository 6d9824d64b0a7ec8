package service

//go:generate mockgen -destination=../../mocks/mock_authenticator.go -package=mocks github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/domain Authenticator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/domain"
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/dto"
	autherror "github.com/nomit-kasera/the-apna-gym-admin-page/internal/errors"
)

// AuthService drives the login and sign-out flows against the record
// service, keeping the session store and the persisted profile in sync.
type AuthService struct {
	authn    domain.Authenticator
	store    *Store
	profiles domain.ProfileStore
	log      *slog.Logger
}

func NewAuthService(authn domain.Authenticator, store *Store, profiles domain.ProfileStore, log *slog.Logger) *AuthService {
	return &AuthService{
		authn:    authn,
		store:    store,
		profiles: profiles,
		log:      log,
	}
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, autherror.ErrMissingFields
	}
	if !strings.Contains(input.Email, "@") {
		return nil, autherror.ErrInvalidEmail
	}

	result, err := s.authn.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	s.store.SetProfile(result.Name, result.Email, result.UserID, result.Role)
	s.store.SetToken(result.Token)
	s.store.SetAuthenticated(true)

	// Persistence failure degrades to a session that will not survive a
	// restart; the login itself still succeeds.
	if ok := s.profiles.Save(&domain.Profile{
		Name:   result.Name,
		Email:  result.Email,
		Token:  result.Token,
		UserID: result.UserID,
		Role:   result.Role,
	}); !ok {
		s.log.Warn("profile not persisted, session will not survive restart", "user_id", result.UserID)
	}

	return &dto.LoginOutput{
		UserID: result.UserID,
		Name:   result.Name,
		Email:  result.Email,
		Role:   result.Role,
		Token:  result.Token,
	}, nil
}

// SignOut clears the persisted profile and resets the in-process session.
func (s *AuthService) SignOut() bool {
	ok := s.profiles.Clear()
	s.store.Reset()

	return ok
}

func (s *AuthService) Session() dto.SessionOutput {
	snap := s.store.Snapshot()

	return dto.SessionOutput{
		UserID:        snap.UserID,
		Name:          snap.Name,
		Email:         snap.Email,
		Role:          snap.Role,
		Authenticated: snap.Authenticated,
	}
}
