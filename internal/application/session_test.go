package application

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/learnhub/learnhub-cli/internal/adapters/api"
	filestore "github.com/learnhub/learnhub-cli/internal/adapters/secrets/file"
	tomlrepo "github.com/learnhub/learnhub-cli/internal/adapters/repo/toml"
	"github.com/learnhub/learnhub-cli/internal/domain"
	"github.com/learnhub/learnhub-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	secrets  ports.SecretStore
	sessions ports.SessionRepository
	service  *SessionService
	gateway  *api.Client
}

func newSessionFixture(t *testing.T, backendURL string) *sessionFixture {
	t.Helper()

	secrets := filestore.NewStore(filepath.Join(t.TempDir(), "secrets"))

	config := viper.New()
	config.Set("session.path", filepath.Join(t.TempDir(), "session.toml"))
	sessions, err := tomlrepo.NewRepository(config, ports.SystemClock{})
	require.NoError(t, err)

	gateway := api.NewClient(backendURL)
	service := NewSessionService(secrets, sessions, gateway, zerolog.Nop())
	return &sessionFixture{secrets: secrets, sessions: sessions, service: service, gateway: gateway}
}

func loginStub(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/login" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"token":"t1","user":{"id":"1","name":"A"}}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRestoreWithEmptyStorageLeavesSessionUnauthenticated(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(t, "http://127.0.0.1:0")

	assert.True(t, fx.service.Restoring())
	require.NoError(t, fx.service.Restore(context.Background()))
	assert.False(t, fx.service.Restoring())
	assert.False(t, fx.service.Authenticated())

	require.ErrorIs(t, fx.service.Require(context.Background()), domain.ErrLoginRequired)
}

func TestRestoreIsIdempotent(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(t, "http://127.0.0.1:0")
	require.NoError(t, fx.secrets.Put(context.Background(), TokenSecretKey, "t1"))
	require.NoError(t, fx.sessions.Save(context.Background(), domain.Principal{ID: "1", Name: "A"}))

	require.NoError(t, fx.service.Restore(context.Background()))
	first := fx.service.Principal()
	require.NoError(t, fx.service.Restore(context.Background()))

	assert.True(t, fx.service.Authenticated())
	assert.Equal(t, first, fx.service.Principal())
}

func TestRestoreToleratesTokenWithoutPrincipal(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(t, "http://127.0.0.1:0")
	require.NoError(t, fx.secrets.Put(context.Background(), TokenSecretKey, "t1"))

	require.NoError(t, fx.service.Restore(context.Background()))
	assert.True(t, fx.service.Authenticated())
	assert.Nil(t, fx.service.Principal())
}

func TestRestorePurgesBothEntriesWhenPrincipalUnreadable(t *testing.T) {
	t.Parallel()

	secrets := filestore.NewStore(filepath.Join(t.TempDir(), "secrets"))
	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	config := viper.New()
	config.Set("session.path", sessionPath)
	sessions, err := tomlrepo.NewRepository(config, ports.SystemClock{})
	require.NoError(t, err)

	require.NoError(t, secrets.Put(context.Background(), TokenSecretKey, "t1"))
	writeFile(t, sessionPath, "{definitely not toml")

	service := NewSessionService(secrets, sessions, api.NewClient("http://127.0.0.1:0"), zerolog.Nop())
	require.NoError(t, service.Restore(context.Background()))

	assert.False(t, service.Authenticated())
	_, err = secrets.Get(context.Background(), TokenSecretKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	_, err = sessions.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoPrincipal)
}

func TestLoginPersistsBothEntriesAndReportsLanding(t *testing.T) {
	t.Parallel()

	server := loginStub(t)
	fx := newSessionFixture(t, server.URL)

	route, err := fx.service.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, LandingRoute, route)
	assert.True(t, fx.service.Authenticated())

	token, err := fx.secrets.Get(context.Background(), TokenSecretKey)
	require.NoError(t, err)
	assert.Equal(t, "t1", token)

	principal, err := fx.sessions.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{ID: "1", Name: "A"}, principal)
}

func TestLoginRejectionLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg":"Invalid credentials"}`))
	}))
	t.Cleanup(server.Close)
	fx := newSessionFixture(t, server.URL)

	_, err := fx.service.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.ErrorContains(t, err, "Invalid credentials")
	assert.False(t, fx.service.Authenticated())

	_, err = fx.secrets.Get(context.Background(), TokenSecretKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestLoginMalformedResponseIsShapeViolation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"t1"}`))
	}))
	t.Cleanup(server.Close)
	fx := newSessionFixture(t, server.URL)

	_, err := fx.service.Login(context.Background(), "a@b.com", "secret")
	require.ErrorIs(t, err, domain.ErrUnexpectedShape)
	assert.False(t, fx.service.Authenticated())
}

func TestLogoutIsIdempotentAndClearsEverything(t *testing.T) {
	t.Parallel()

	server := loginStub(t)
	fx := newSessionFixture(t, server.URL)

	_, err := fx.service.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(context.Background()))
	assert.False(t, fx.service.Authenticated())
	require.NoError(t, fx.service.Logout(context.Background()))

	_, err = fx.secrets.Get(context.Background(), TokenSecretKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	_, err = fx.sessions.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoPrincipal)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestUnauthorizedResponsePurgesCredentialsThroughGatewayHook(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/login" {
			_, _ = w.Write([]byte(`{"token":"t1","user":{"id":"1","name":"A"}}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg":"token expired"}`))
	}))
	t.Cleanup(backend.Close)

	secrets := filestore.NewStore(filepath.Join(t.TempDir(), "secrets"))
	config := viper.New()
	config.Set("session.path", filepath.Join(t.TempDir(), "session.toml"))
	sessions, err := tomlrepo.NewRepository(config, ports.SystemClock{})
	require.NoError(t, err)

	var service *SessionService
	gateway := api.NewClient(backend.URL,
		api.WithTokenSource(func(ctx context.Context) string {
			token, getErr := secrets.Get(ctx, TokenSecretKey)
			if getErr != nil {
				return ""
			}
			return token
		}),
		api.WithUnauthorizedHook(func(ctx context.Context) {
			service.PurgeCredentials(ctx)
		}),
	)
	service = NewSessionService(secrets, sessions, gateway, zerolog.Nop())

	_, err = service.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.True(t, service.Authenticated())

	_, err = gateway.Get(context.Background(), "/users")
	require.ErrorIs(t, err, domain.ErrSessionExpired)

	assert.False(t, service.Authenticated())
	_, err = secrets.Get(context.Background(), TokenSecretKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	_, err = sessions.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoPrincipal)
}
