package service

import (
	"sync"

	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/domain"
)

// Store holds the process-wide session state. It is written by the login
// flow, the session guard and sign-out, and read from anywhere (the
// record client pulls the bearer token from it). Writes are serialized
// by user action; last write wins.
type Store struct {
	mu      sync.RWMutex
	session domain.Session
}

func NewStore() *Store {
	return &Store{}
}

func (st *Store) Snapshot() domain.Session {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.session
}

func (st *Store) SetProfile(name, email, userID, role string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.session.Name = name
	st.session.Email = email
	st.session.UserID = userID
	st.session.Role = role
}

func (st *Store) SetToken(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.session.Token = token
	if token == "" {
		st.session.Authenticated = false
	}
}

// SetAuthenticated marks the session authenticated. The flag can only be
// raised while a token is present; authenticated == true implies a
// non-empty credential.
func (st *Store) SetAuthenticated(v bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.session.Authenticated = v && st.session.Token != ""
}

func (st *Store) Token() string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.session.Token
}

func (st *Store) Authenticated() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.session.Authenticated
}

// Reset restores every field to its zero value. Calling it repeatedly is
// idempotent.
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.session = domain.Session{}
}
