package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "site.db")

	s, err := NewSQLiteStorage(ctx, path)
	require.NoError(t, err)

	_, err = s.Get(ctx, "scrollPositions")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "scrollPositions", `{"/news":240}`))
	require.NoError(t, s.Set(ctx, "scrollPositions", `{"/news":300}`))
	require.NoError(t, s.Close())

	// survives a restart
	s, err = NewSQLiteStorage(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, "scrollPositions")
	require.NoError(t, err)
	assert.Equal(t, `{"/news":300}`, v)
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	_, err := s.Get(ctx, "locale")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, s.Set(ctx, "locale", "en"))
	v, err := s.Get(ctx, "locale")
	require.NoError(t, err)
	assert.Equal(t, "en", v)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := newError("set", "scrollPositions", cause)

	var storageErr *Error
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "set", storageErr.Op)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "scrollPositions")
}
