package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/learnhub/learnhub-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRun(stdout, stderr string, err error) runFunc {
	return func(_ context.Context, _ string, _ ...string) (string, string, error) {
		return stdout, stderr, err
	}
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRun("jwt-abc\n", "", nil)}

	got, err := store.Get(context.Background(), "learnhub/token")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", got)
}

func TestStoreGetMissingEntryReportsNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRun("", "Error: learnhub/token is not in the password store.\n", errors.New("exit status 1"))}

	_, err := store.Get(context.Background(), "learnhub/token")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteMissingEntryIsIdempotent(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRun("", "Error: learnhub/token is not in the password store.\n", errors.New("exit status 1"))}

	require.NoError(t, store.Delete(context.Background(), "learnhub/token"))
}

func TestStorePutSurfacesStderrDetail(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRun("", "gpg: decryption failed\n", errors.New("exit status 2"))}

	err := store.Put(context.Background(), "learnhub/token", "jwt-abc")
	require.Error(t, err)
	assert.ErrorContains(t, err, "gpg: decryption failed")
}
