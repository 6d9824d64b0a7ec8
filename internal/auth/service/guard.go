package service

//go:generate mockgen -destination=../../mocks/mock_token_validator.go -package=mocks github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/domain TokenValidator,ProfileStore

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/domain"
	"github.com/nomit-kasera/the-apna-gym-admin-page/pkg/constant"
)

type GuardState int

const (
	StateUnknown GuardState = iota
	StateUnauthenticated
	StateVerifying
	StateAuthenticated
)

type Action int

const (
	// ActionRender allows the protected content to be served.
	ActionRender Action = iota
	// ActionRedirect sends the visitor to RedirectTo instead; nothing
	// protected is rendered.
	ActionRedirect
)

// Decision is the guard's declarative outcome. The state machine never
// performs navigation itself; the router shell consumes the decision.
type Decision struct {
	Action     Action
	RedirectTo string
}

// Guard gates protected routes on a valid session. On entry it trusts an
// already-authenticated store without any network call; otherwise it
// tries to restore the persisted profile and validates its token against
// the record service. Any failure collapses to "no valid session".
type Guard struct {
	store     *Store
	profiles  domain.ProfileStore
	validator domain.TokenValidator
	log       *slog.Logger

	mu    sync.Mutex
	state GuardState
}

func NewGuard(store *Store, profiles domain.ProfileStore, validator domain.TokenValidator, log *slog.Logger) *Guard {
	return &Guard{
		store:     store,
		profiles:  profiles,
		validator: validator,
		log:       log,
	}
}

func (g *Guard) State() GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

func (g *Guard) setState(s GuardState) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
}

// Check runs the session state machine for a request of requestedPath
// and returns what the router should do.
func (g *Guard) Check(ctx context.Context, requestedPath string) Decision {
	if g.store.Authenticated() {
		g.setState(StateAuthenticated)
		return Decision{Action: ActionRender}
	}

	profile := g.profiles.Load()
	if profile == nil {
		g.setState(StateUnauthenticated)
		return Decision{Action: ActionRedirect, RedirectTo: LoginRedirect(requestedPath)}
	}

	g.setState(StateVerifying)

	// Cheap local probe: a JWT whose exp claim is already past cannot
	// validate, so skip the round trip. Opaque tokens fall through.
	if tokenExpired(profile.Token, time.Now()) {
		g.log.Info("persisted token expired locally", "user_id", profile.UserID)
		return g.rejectSession(requestedPath)
	}

	ok, err := g.validator.ValidateToken(ctx, profile.Token)
	if err != nil || !ok {
		if err != nil {
			g.log.Warn("token validation failed", "error", err)
		}
		return g.rejectSession(requestedPath)
	}

	g.store.SetProfile(profile.Name, profile.Email, profile.UserID, profile.Role)
	g.store.SetToken(profile.Token)
	g.store.SetAuthenticated(true)
	g.setState(StateAuthenticated)

	return Decision{Action: ActionRender}
}

func (g *Guard) rejectSession(requestedPath string) Decision {
	g.profiles.Clear()
	g.store.Reset()
	g.setState(StateUnauthenticated)

	return Decision{Action: ActionRedirect, RedirectTo: LoginRedirect(requestedPath)}
}

// Middleware adapts guard decisions to Fiber routes.
func (g *Guard) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := g.Check(c.UserContext(), c.OriginalURL())
		if decision.Action == ActionRedirect {
			return c.Redirect(decision.RedirectTo, fiber.StatusFound)
		}

		return c.Next()
	}
}

// LoginRedirect builds the login entry-point URL carrying the originally
// requested location in the ref parameter.
func LoginRedirect(requestedPath string) string {
	return constant.LoginPath + "?" + constant.RefParam + "=" + url.QueryEscape(requestedPath)
}

// tokenExpired reports whether token is a JWT with an exp claim in the
// past. Anything that does not parse as a JWT, or carries no exp claim,
// returns false and is left to the remote validator.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(now)
}
