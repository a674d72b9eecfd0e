package applynow

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanboard/cms/internal/apperror"
	"github.com/loanboard/cms/internal/db/dbtest"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewBoltRepository(dbtest.Bolt(t)))
}

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

func TestGetCreatesDefaultOncePerScope(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	ids := map[Scope]string{}
	for _, scope := range Scopes {
		first, err := svc.Get(ctx, scope)
		require.NoError(t, err)
		assert.True(t, first.IsActive)
		assert.Empty(t, first.Description)
		assert.Equal(t, scope, first.Scope)

		second, err := svc.Get(ctx, scope)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		ids[scope] = first.ID
	}

	assert.NotEqual(t, ids[ScopeGlobal], ids[ScopeUSA])
	assert.NotEqual(t, ids[ScopeUSA], ids[ScopeIndia])
}

func TestGetConcurrentFirstAccess(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	const n = 16
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := svc.Get(ctx, ScopeIndia)
			if assert.NoError(t, err) {
				ids[i] = s.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestSet(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	s, err := svc.Set(ctx, ScopeUSA, SetRequest{IsActive: boolPtr(false), Description: strPtr("  closed  ")})
	require.NoError(t, err)
	assert.False(t, s.IsActive)
	assert.Equal(t, "closed", s.Description)

	again, err := svc.Set(ctx, ScopeUSA, SetRequest{IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID)
	assert.True(t, again.IsActive)
	assert.Equal(t, "closed", again.Description, "description is kept when omitted")
}

func TestSetRequiresIsActive(t *testing.T) {
	svc := newService(t)

	_, err := svc.Set(context.Background(), ScopeGlobal, SetRequest{Description: strPtr("x")})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	e, ok := apperror.As(err)
	require.True(t, ok)
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "isActive", e.Fields[0].Field)
}

func TestUpdateIsPartial(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Update(ctx, ScopeGlobal, UpdateRequest{Description: strPtr("hello")})
	require.NoError(t, err)
	assert.True(t, created.IsActive, "absent document is created with the default flag")
	assert.Equal(t, "hello", created.Description)

	updated, err := svc.Update(ctx, ScopeGlobal, UpdateRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "hello", updated.Description)

	cleared, err := svc.Update(ctx, ScopeGlobal, UpdateRequest{Description: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, cleared.Description)
	assert.False(t, cleared.IsActive)
}

func TestPublicView(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	p, err := svc.Public(ctx, ScopeIndia)
	require.NoError(t, err)
	assert.True(t, p.IsActive)
	assert.Nil(t, p.Description)

	_, err = svc.Set(ctx, ScopeIndia, SetRequest{IsActive: boolPtr(true), Description: strPtr("Apply today")})
	require.NoError(t, err)

	p, err = svc.Public(ctx, ScopeIndia)
	require.NoError(t, err)
	require.NotNil(t, p.Description)
	assert.Equal(t, "Apply today", *p.Description)
}

func TestUnknownScope(t *testing.T) {
	svc := newService(t)

	_, err := svc.Get(context.Background(), Scope("mars"))
	require.ErrorIs(t, err, ErrUnknownScope)
}
