package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanboard/cms/internal/apperror"
	"github.com/loanboard/cms/internal/db/dbtest"
)

// fakeLoans counts loans from a fixed table: categoryID -> active flags of its loans.
type fakeLoans map[string][]bool

func (f fakeLoans) CountByCategory(_ context.Context, categoryID string, activeOnly bool) (int, error) {
	n := 0
	for _, active := range f[categoryID] {
		if active || !activeOnly {
			n++
		}
	}
	return n, nil
}

func newService(t *testing.T, loans fakeLoans) *Service {
	t.Helper()
	if loans == nil {
		loans = fakeLoans{}
	}
	return NewService(NewBoltRepository(dbtest.Bolt(t)), loans)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }

func TestCreate(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateRequest{Name: "  Home loans ", Description: " Mortgages "})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Home loans", c.Name)
	assert.Equal(t, "Mortgages", c.Description)
	assert.True(t, c.IsActive)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
}

func TestCreateDuplicateName(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "Home loans"})
	require.NoError(t, err)

	for _, name := range []string{"Home loans", "HOME LOANS", " home loans "} {
		_, err = svc.Create(ctx, CreateRequest{Name: name})
		require.Error(t, err, name)
		assert.True(t, apperror.Is(err, apperror.KindConflict), name)
		assert.Equal(t, MsgDuplicate, err.Error())
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newService(t, nil)

	_, err := svc.Create(context.Background(), CreateRequest{Name: "   "})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestRepositoryDuplicateIsBackstop(t *testing.T) {
	repo := NewBoltRepository(dbtest.Bolt(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &Category{Name: "Cars", IsActive: true})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &Category{Name: "cars", IsActive: true})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdate(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	home, err := svc.Create(ctx, CreateRequest{Name: "Home"})
	require.NoError(t, err)
	car, err := svc.Create(ctx, CreateRequest{Name: "Car", Description: "Auto"})
	require.NoError(t, err)

	t.Run("rename onto another category conflicts", func(t *testing.T) {
		_, err := svc.Update(ctx, car.ID, UpdateRequest{Name: strPtr("home")})
		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindConflict))
	})

	t.Run("resubmitting own name does not conflict", func(t *testing.T) {
		c, err := svc.Update(ctx, home.ID, UpdateRequest{Name: strPtr("Home")})
		require.NoError(t, err)
		assert.Equal(t, "Home", c.Name)
	})

	t.Run("case-only rename of self", func(t *testing.T) {
		c, err := svc.Update(ctx, home.ID, UpdateRequest{Name: strPtr("HOME")})
		require.NoError(t, err)
		assert.Equal(t, "HOME", c.Name)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		c, err := svc.Update(ctx, car.ID, UpdateRequest{IsActive: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, c.IsActive)
		assert.Equal(t, "Car", c.Name)
		assert.Equal(t, "Auto", c.Description)
	})

	t.Run("rename frees the old name", func(t *testing.T) {
		_, err := svc.Update(ctx, car.ID, UpdateRequest{Name: strPtr("Vehicle")})
		require.NoError(t, err)
		_, err = svc.Create(ctx, CreateRequest{Name: "Car"})
		require.NoError(t, err)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, car.ID, UpdateRequest{Name: strPtr("  ")})
		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := svc.Update(ctx, "does-not-exist", UpdateRequest{Name: strPtr("x")})
		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestDelete(t *testing.T) {
	loans := fakeLoans{}
	svc := newService(t, loans)
	ctx := context.Background()

	used, err := svc.Create(ctx, CreateRequest{Name: "Used"})
	require.NoError(t, err)
	unused, err := svc.Create(ctx, CreateRequest{Name: "Unused"})
	require.NoError(t, err)
	loans[used.ID] = []bool{true, false}

	err = svc.Delete(ctx, used.ID)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assert.Equal(t, "Category has 2 loan(s) assigned; reassign or delete them first", err.Error())

	require.NoError(t, svc.Delete(ctx, unused.ID))
	_, err = svc.Get(ctx, unused.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	err = svc.Delete(ctx, unused.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	// the deleted name can be reused
	_, err = svc.Create(ctx, CreateRequest{Name: "unused"})
	require.NoError(t, err)
}

func TestListNewestFirst(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, CreateRequest{Name: name})
		require.NoError(t, err)
	}

	cats, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "C", cats[0].Name)
	assert.Equal(t, "A", cats[2].Name)
}

func TestPublicListHidesInactive(t *testing.T) {
	loans := fakeLoans{}
	svc := newService(t, loans)
	ctx := context.Background()

	personal, err := svc.Create(ctx, CreateRequest{Name: "personal"})
	require.NoError(t, err)
	business, err := svc.Create(ctx, CreateRequest{Name: "Business"})
	require.NoError(t, err)
	hidden, err := svc.Create(ctx, CreateRequest{Name: "Hidden", IsActive: boolPtr(false)})
	require.NoError(t, err)

	loans[personal.ID] = []bool{true, true, false}
	loans[hidden.ID] = []bool{true}

	cats, err := svc.PublicList(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)

	assert.Equal(t, business.ID, cats[0].ID)
	assert.Equal(t, 0, cats[0].LoanCount)
	assert.Equal(t, personal.ID, cats[1].ID)
	assert.Equal(t, 2, cats[1].LoanCount)

	for _, c := range cats {
		assert.True(t, c.IsActive)
	}

	_, err = svc.PublicGet(ctx, hidden.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	pc, err := svc.PublicGet(ctx, personal.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, pc.LoanCount)
}

func TestSummaries(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateRequest{Name: "Gold", Description: "Gold loans"})
	require.NoError(t, err)

	sums, err := svc.Summaries(ctx, []string{c.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, Summary{ID: c.ID, Name: "Gold", Description: "Gold loans"}, sums[c.ID])
}
