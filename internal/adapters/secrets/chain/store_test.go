package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/learnhub/learnhub-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	values  map[string]string
	getErr  error
	putErr  error
	delErr  error
	deletes int
}

var _ ports.SecretStore = (*stubStore)(nil)

func newStubStore() *stubStore {
	return &stubStore{values: map[string]string{}}
}

func (s *stubStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.values[key], nil
}

func (s *stubStore) Put(_ context.Context, key, value string) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.values[key] = value
	return nil
}

func (s *stubStore) Delete(_ context.Context, key string) error {
	s.deletes++
	if s.delErr != nil {
		return s.delErr
	}
	delete(s.values, key)
	return nil
}

func TestChainPrefersPrimary(t *testing.T) {
	t.Parallel()

	primary := newStubStore()
	fallback := newStubStore()
	primary.values["k"] = "from-primary"
	fallback.values["k"] = "from-fallback"

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "from-primary", got)
}

func TestChainFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := newStubStore()
	primary.getErr = errors.New("backend down")
	primary.putErr = errors.New("backend down")
	fallback := newStubStore()

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "k", "v"))

	got, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestChainDoesNotFallBackOnCancelledContext(t *testing.T) {
	t.Parallel()

	primary := newStubStore()
	primary.getErr = context.Canceled
	fallback := newStubStore()
	fallback.values["k"] = "v"

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "k")
	require.ErrorIs(t, err, context.Canceled)
}

func TestChainDeletePurgesBothBackends(t *testing.T) {
	t.Parallel()

	primary := newStubStore()
	fallback := newStubStore()
	primary.values["k"] = "v"
	fallback.values["k"] = "v"

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "k"))
	assert.Equal(t, 1, primary.deletes)
	assert.Equal(t, 1, fallback.deletes)
	assert.Empty(t, primary.values)
	assert.Empty(t, fallback.values)
}

func TestChainDeleteToleratesUnreachablePrimary(t *testing.T) {
	t.Parallel()

	primary := newStubStore()
	primary.delErr = errors.New("backend down")
	fallback := newStubStore()
	fallback.values["k"] = "v"

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "k"))
	assert.Empty(t, fallback.values)
}
