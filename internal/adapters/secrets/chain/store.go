package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/learnhub/learnhub-cli/internal/adapters/secrets/file"
	passstore "github.com/learnhub/learnhub-cli/internal/adapters/secrets/pass"
	"github.com/learnhub/learnhub-cli/internal/ports"
)

// Store tries a primary secret backend and falls back to a second one on
// any failure that is not a context cancellation.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(primary, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errors.New("primary secret store is nil")
	}
	if fallback == nil {
		return nil, errors.New("fallback secret store is nil")
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewPassFirstWithFileFallback prefers the pass password manager and
// keeps plain files under fileRoot for machines without it.
func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if skipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary get failed: %w; fallback get failed: %w", err, fallbackErr)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if skipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary put failed: %w; fallback put failed: %w", err, fallbackErr)
}

// Delete removes the secret from both backends so a later Get cannot
// resurrect a purged credential from the fallback. An unreachable primary
// is tolerated as long as the fallback purge succeeds.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if skipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	if fallbackErr == nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("primary delete failed: %w; fallback delete failed: %w", err, fallbackErr)
	}

	return fmt.Errorf("fallback delete failed: %w", fallbackErr)
}

func skipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
