package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/learnhub/learnhub-cli/internal/adapters/api"
	"github.com/learnhub/learnhub-cli/internal/domain"
	"github.com/learnhub/learnhub-cli/internal/ports"
	"github.com/rs/zerolog"
)

// TokenSecretKey is where the bearer token lives in the secret store.
const TokenSecretKey = "learnhub/token"

// LandingRoute is the surface a fresh login navigates to.
const LandingRoute = "dashboard"

// SessionService is the single source of truth for "is this client
// authenticated" and the only component allowed to mutate the persisted
// credentials. The token is held in the secret store, the principal in
// the session repository; the two are always written and purged together.
type SessionService struct {
	secrets  ports.SecretStore
	sessions ports.SessionRepository
	gateway  *api.Client
	log      zerolog.Logger

	session  domain.Session
	restored bool
}

func NewSessionService(secrets ports.SecretStore, sessions ports.SessionRepository, gateway *api.Client, log zerolog.Logger) *SessionService {
	return &SessionService{
		secrets:  secrets,
		sessions: sessions,
		gateway:  gateway,
		log:      log,
	}
}

// Restore rebuilds the in-memory session from persisted storage. A token
// without a principal yields a degraded but usable session; a token with
// an unparseable principal purges both entries and leaves the session
// empty (fail closed). Restore is idempotent and must complete before the
// session is treated as reliable.
func (s *SessionService) Restore(ctx context.Context) error {
	if s.restored {
		return nil
	}

	token, err := s.secrets.Get(ctx, TokenSecretKey)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			return fmt.Errorf("read stored token: %w", err)
		}
		s.session = domain.Session{}
		s.restored = true
		return nil
	}

	principal, err := s.sessions.Load(ctx)
	switch {
	case err == nil:
		s.session = domain.Session{Token: token, Principal: &principal}
	case errors.Is(err, domain.ErrNoPrincipal):
		s.log.Warn().Msg("stored token has no principal, continuing with degraded session")
		s.session = domain.Session{Token: token}
	default:
		s.log.Warn().Err(err).Msg("stored principal unreadable, clearing session")
		if purgeErr := s.purge(ctx); purgeErr != nil {
			return fmt.Errorf("clear unreadable session: %w", purgeErr)
		}
		s.session = domain.Session{}
	}

	s.restored = true
	return nil
}

// Restoring reports whether the initial restore is still pending, the
// one-shot loading state no caller may race past.
func (s *SessionService) Restoring() bool {
	return !s.restored
}

type loginResponse struct {
	Token string            `json:"token"`
	User  *domain.Principal `json:"user"`
}

// Login exchanges credentials for a token and persists both session
// halves, or neither. The returned route is the authenticated landing
// surface.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, error) {
	response, err := s.gateway.Exchange(ctx, "/users/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if response.Status != http.StatusOK {
		return "", errors.New(api.ServerMessage(response.Body, "Invalid email or password"))
	}

	var payload loginResponse
	if err := json.Unmarshal(response.Body, &payload); err != nil {
		return "", fmt.Errorf("%w: decode login response", domain.ErrUnexpectedShape)
	}
	if strings.TrimSpace(payload.Token) == "" || payload.User == nil || payload.User.ID == "" {
		return "", fmt.Errorf("%w: login response missing token or user", domain.ErrUnexpectedShape)
	}

	if err := s.secrets.Put(ctx, TokenSecretKey, payload.Token); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}
	if err := s.sessions.Save(ctx, *payload.User); err != nil {
		// Never leave a token persisted without its principal.
		if rollbackErr := s.secrets.Delete(ctx, TokenSecretKey); rollbackErr != nil {
			return "", fmt.Errorf("persist principal and rollback token: %w", errors.Join(err, rollbackErr))
		}
		return "", fmt.Errorf("persist principal: %w", err)
	}

	s.session = domain.Session{Token: payload.Token, Principal: payload.User}
	s.restored = true
	s.log.Debug().Str("user", payload.User.ID).Msg("login succeeded")

	return LandingRoute, nil
}

// Logout clears the in-memory session and both persisted entries. Safe to
// call when already logged out.
func (s *SessionService) Logout(ctx context.Context) error {
	s.session = domain.Session{}
	s.restored = true
	return s.purge(ctx)
}

// PurgeCredentials is the gateway's 401 hook: both persisted entries go,
// and the in-memory session with them.
func (s *SessionService) PurgeCredentials(ctx context.Context) {
	s.session = domain.Session{}
	if err := s.purge(ctx); err != nil {
		s.log.Warn().Err(err).Msg("purge credentials after 401")
	}
}

// Authenticated derives from token presence alone; it is never cached
// separately.
func (s *SessionService) Authenticated() bool {
	return s.session.Authenticated()
}

func (s *SessionService) Principal() *domain.Principal {
	return s.session.Principal
}

// Session returns a copy of the in-memory session for display.
func (s *SessionService) Session() domain.Session {
	return s.session
}

// Require is the route guard: it settles the restore first and rejects
// unauthenticated callers.
func (s *SessionService) Require(ctx context.Context) error {
	if err := s.Restore(ctx); err != nil {
		return err
	}
	if !s.Authenticated() {
		return domain.ErrLoginRequired
	}
	return nil
}

func (s *SessionService) purge(ctx context.Context) error {
	var errs []error
	if err := s.secrets.Delete(ctx, TokenSecretKey); err != nil {
		errs = append(errs, fmt.Errorf("delete stored token: %w", err))
	}
	if err := s.sessions.Clear(ctx); err != nil {
		errs = append(errs, fmt.Errorf("clear stored principal: %w", err))
	}
	return errors.Join(errs...)
}
