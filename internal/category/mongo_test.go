package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/loanboard/cms/internal/db/dbtest"
)

func TestMongoRepository(t *testing.T) {
	repo := NewMongoRepository(dbtest.Mongo(t))
	ctx := context.Background()

	c, err := repo.Create(ctx, &Category{Name: "Home", IsActive: true})
	require.NoError(t, err)

	// no pre-check at this layer: the unique name_ci index rejects it
	_, err = repo.Create(ctx, &Category{Name: "HOME", IsActive: true})
	require.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.FindByName(ctx, "home", c.ID)
	require.ErrorIs(t, err, ErrNotFound)

	found, err := repo.FindByName(ctx, "home", "")
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)

	_, err = repo.Get(ctx, "not-an-object-id")
	require.ErrorIs(t, err, ErrNotFound)

	desc := "Mortgages"
	updated, err := repo.Update(ctx, c.ID, Patch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Home", updated.Name)
	assert.Equal(t, "Mortgages", updated.Description)

	car, err := repo.Create(ctx, &Category{Name: "Car", IsActive: false})
	require.NoError(t, err)

	taken := "home"
	_, err = repo.Update(ctx, car.ID, Patch{Name: &taken})
	require.ErrorIs(t, err, ErrDuplicate)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, c.ID, active[0].ID)

	many, err := repo.GetMany(ctx, []string{c.ID, car.ID, "bogus"})
	require.NoError(t, err)
	assert.Len(t, many, 2)

	require.NoError(t, repo.Delete(ctx, c.ID))
	require.ErrorIs(t, repo.Delete(ctx, c.ID), ErrNotFound)
}

func TestMongoRepositoryDriverErrors(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	duplicate := mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error index: name_ci_1"}
	duplicateCmd := mtest.CommandError{Code: 11000, Name: "DuplicateKey", Message: "E11000 duplicate key error index: name_ci_1"}

	mt.Run("create duplicate key", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(duplicate))

		_, err := repo.Create(ctx, &Category{Name: "Home", IsActive: true})
		require.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c, err := repo.Create(ctx, &Category{Name: "Home Loans", IsActive: true})
		require.NoError(mt, err)
		assert.Equal(mt, "Home Loans", c.Name)
		assert.True(mt, primitive.IsValidObjectID(c.ID))
	})

	mt.Run("update duplicate key", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(duplicateCmd))

		name := "Home"
		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), Patch{Name: &name})
		require.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("update missing document", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		desc := "x"
		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), Patch{Description: &desc})
		require.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("find by name excludes self", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		self := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "TestDB.categories", mtest.FirstBatch))

		_, err := repo.FindByName(ctx, " HOME", self.Hex())
		require.ErrorIs(mt, err, ErrNotFound)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, foldName(" HOME"), evt.Command.Lookup("filter", "name_ci").StringValue())
		assert.Equal(mt, self, evt.Command.Lookup("filter", "_id", "$ne").ObjectID())
	})

	mt.Run("delete missing document", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		require.ErrorIs(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()), ErrNotFound)
	})

	mt.Run("malformed ids never reach the server", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)

		_, err := repo.Get(ctx, "not-an-object-id")
		require.ErrorIs(mt, err, ErrNotFound)
		require.ErrorIs(mt, repo.Delete(ctx, "not-an-object-id"), ErrNotFound)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}
