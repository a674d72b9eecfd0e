package applynow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanboard/cms/internal/db/dbtest"
)

func TestPostgresRepository(t *testing.T) {
	repo := NewPostgresRepository(dbtest.Postgres(t))
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, ScopeGlobal)
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	second, err := repo.GetOrCreate(ctx, ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	off := false
	updated, err := repo.Upsert(ctx, ScopeGlobal, Patch{IsActive: &off})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.False(t, updated.IsActive)

	desc := "fresh"
	created, err := repo.Upsert(ctx, ScopeUSA, Patch{Description: &desc})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, "fresh", created.Description)
}
