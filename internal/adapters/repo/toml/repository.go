package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/learnhub/learnhub-cli/internal/domain"
	"github.com/learnhub/learnhub-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	sessionPathKey  = "session.path"
	sessionFileMode = 0o600
	sessionDirMode  = 0o700
	configDirName   = ".learnhub"
	sessionFileName = "session.toml"
	tempFilePattern = ".session-*.toml.tmp"
)

// Repository persists the principal half of the session as a small TOML
// file. The file location can be overridden through the shared config
// file; the default lives next to it under ~/.learnhub.
type Repository struct {
	sessionPath string
	clock       ports.Clock
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper, clock ports.Clock) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(sessionPathKey, filepath.Join(homeDir, configDirName, sessionFileName))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	sessionPath := cfg.GetString(sessionPathKey)
	if sessionPath == "" {
		return nil, errors.New("session path is empty")
	}
	sessionPath, err = filepath.Abs(sessionPath)
	if err != nil {
		return nil, fmt.Errorf("resolve session path: %w", err)
	}
	sessionPath = filepath.Clean(sessionPath)

	return &Repository{sessionPath: sessionPath, clock: clock, mu: lockForPath(sessionPath)}, nil
}

func (r *Repository) Load(ctx context.Context) (domain.Principal, error) {
	if err := ctx.Err(); err != nil {
		return domain.Principal{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.sessionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Principal{}, domain.ErrNoPrincipal
		}
		return domain.Principal{}, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Principal{}, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Principal{}, err
	}
	if file.Principal.ID == "" {
		return domain.Principal{}, domain.ErrNoPrincipal
	}

	return domain.Principal{ID: file.Principal.ID, Name: file.Principal.Name}, nil
}

func (r *Repository) Save(ctx context.Context, principal domain.Principal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := fileSchema{
		Version: schemaVersion,
		Principal: principalSchema{
			ID:   principal.ID,
			Name: principal.Name,
		},
		SavedAt: r.clock.Now().UTC().Format(time.RFC3339),
	}

	return r.write(file)
}

// Clear is idempotent: a missing session file is already cleared.
func (r *Repository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.sessionPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}

func (r *Repository) write(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(r.sessionPath), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.sessionPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}
	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, r.sessionPath); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	cleanup = false

	if err := os.Chmod(r.sessionPath, sessionFileMode); err != nil {
		return fmt.Errorf("chmod session file: %w", err)
	}

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
