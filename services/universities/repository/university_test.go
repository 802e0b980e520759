package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sydoni/sydoni-drive/internal/pkg/storage"
	"github.com/sydoni/sydoni-drive/services/universities"
)

func newTestRepo(t *testing.T) *UniversityRepo {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewUniversityRepo(store)
}

func TestEnsureSeeded_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSeeded(ctx))
	first, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 3)

	// Seeding again must not duplicate entries
	require.NoError(t, repo.EnsureSeeded(ctx))
	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCoordinatesOf_CaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSeeded(ctx))

	exact, err := repo.CoordinatesOf(ctx, "Université Norbert Zongo (UNZ)")
	require.NoError(t, err)
	assert.InDelta(t, 12.2400, exact.Latitude, 1e-9)
	assert.InDelta(t, -2.3990, exact.Longitude, 1e-9)

	folded, err := repo.CoordinatesOf(ctx, "UNIVERSITÉ NORBERT ZONGO (UNZ)")
	require.NoError(t, err)
	assert.Equal(t, exact, folded)
}

func TestCoordinatesOf_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSeeded(ctx))

	_, err := repo.CoordinatesOf(ctx, "Unknown Campus")
	assert.ErrorIs(t, err, universities.ErrNotFound)
}
