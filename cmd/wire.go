package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/learnhub/learnhub-cli/internal/adapters/api"
	tomlrepo "github.com/learnhub/learnhub-cli/internal/adapters/repo/toml"
	chainstore "github.com/learnhub/learnhub-cli/internal/adapters/secrets/chain"
	"github.com/learnhub/learnhub-cli/internal/application"
	"github.com/learnhub/learnhub-cli/internal/ports"
)

type app struct {
	session   *application.SessionService
	catalog   *application.CatalogService
	directory *application.DirectoryService
	experts   *application.ExpertService
	overview  *application.OverviewService
	library   *application.LibraryService

	secretStore ports.SecretStore
	gateway     *api.Client
	config      *viper.Viper
	baseURL     string
	log         zerolog.Logger
}

const configKeyBaseURL = "api.base_url"

// loadConfig reads ~/.learnhub/config.toml when present. The API base URL
// resolves env first, then file, then the local dev default.
func loadConfig(homeDir string) (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, ".learnhub"))
	cfg.SetDefault(configKeyBaseURL, "http://localhost:5000")

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if override := os.Getenv("LEARNHUB_API_URL"); override != "" {
		cfg.Set(configKeyBaseURL, override)
	}

	return cfg, nil
}

func wireApp() (*app, error) {
	log := newLogger()

	repo, err := tomlrepo.NewRepository(viper.New(), ports.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, ".learnhub", "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	cfg, err := loadConfig(homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	wired := &app{
		secretStore: secretStore,
		config:      cfg,
		baseURL:     cfg.GetString(configKeyBaseURL),
		log:         log,
	}

	gateway := api.NewClient(
		wired.baseURL,
		api.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
		api.WithLogger(log),
		api.WithTokenSource(wired.storedToken),
		api.WithUnauthorizedHook(wired.onUnauthorized),
	)

	wired.gateway = gateway
	wired.session = application.NewSessionService(secretStore, repo, gateway, log)
	wired.catalog = application.NewCatalogService(gateway)
	wired.directory = application.NewDirectoryService(gateway)
	wired.experts = application.NewExpertService(gateway)
	wired.overview = application.NewOverviewService(gateway)
	wired.library = application.NewLibraryService()

	return wired, nil
}

// storedToken is the gateway's token source. Every request re-reads the
// secret store so credential changes take effect on the next call.
func (a *app) storedToken(ctx context.Context) string {
	token, err := a.secretStore.Get(ctx, application.TokenSecretKey)
	if err != nil {
		return ""
	}
	return token
}

// onUnauthorized is the gateway's 401 hook.
func (a *app) onUnauthorized(ctx context.Context) {
	a.session.PurgeCredentials(ctx)
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(envOrDefault("LEARNHUB_LOG", "disabled"))
	if err != nil {
		level = zerolog.Disabled
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
