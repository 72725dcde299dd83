package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/learnhub/learnhub-cli/internal/domain"
	"github.com/learnhub/learnhub-cli/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store delegates secret storage to the standard unix password manager.
// When pass is not installed every call reports ErrUnavailable so a chain
// can fall back to file storage.
type Store struct {
	run runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPass}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, "", "show", key)
	if err != nil {
		if strings.Contains(stderr, "is not in the password store") {
			return "", fmt.Errorf("%w: %q", domain.ErrSecretNotFound, key)
		}
		return "", wrapRunError("get", key, err, stderr)
	}

	return strings.TrimRight(stdout, "\r\n"), nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, stderr, err := s.run(ctx, value+"\n", "insert", "-m", "-f", key); err != nil {
		return wrapRunError("put", key, err, stderr)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "-f", key)
	if err != nil {
		if strings.Contains(stderr, "is not in the password store") {
			return nil
		}
		return wrapRunError("delete", key, err, stderr)
	}

	return nil
}

func runPass(ctx context.Context, input string, args ...string) (string, string, error) {
	if _, err := exec.LookPath("pass"); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	cmd := exec.CommandContext(ctx, "pass", args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func wrapRunError(op, key string, err error, stderr string) error {
	detail := strings.TrimSpace(stderr)
	if detail == "" {
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	}
	return fmt.Errorf("pass %s %q: %w: %s", op, key, err, detail)
}
