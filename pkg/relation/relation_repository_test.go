package relation

import (
	"context"
	"sync"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationRepositoryInsertAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRelationRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "author")
	reader := testutil.CreateUser(t, db, "reader")
	recipe := testutil.CreateRecipe(t, db, author, "soup", nil)

	created, err := repo.Insert(ctx, KindFavorite, reader.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Insert(ctx, KindFavorite, reader.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, created, "second insert must hit the unique index")

	// the same pair under another kind is independent
	created, err = repo.Insert(ctx, KindShoppingCart, reader.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, created)

	var favorites int64
	require.NoError(t, db.Model(&entities.Favorite{}).Count(&favorites).Error)
	assert.Equal(t, int64(1), favorites)

	deleted, err := repo.Delete(ctx, KindFavorite, reader.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, KindFavorite, reader.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRelationRepositorySubscriptions(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRelationRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "author")
	reader := testutil.CreateUser(t, db, "reader")

	created, err := repo.Insert(ctx, KindSubscription, reader.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Insert(ctx, KindSubscription, reader.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, created)

	// the reverse direction is a different subscription
	created, err = repo.Insert(ctx, KindSubscription, author.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, created)

	_, err = repo.Insert(ctx, KindSubscription, reader.ID, reader.ID)
	assert.Error(t, err, "check constraint rejects self-subscription")
}

func TestRelationRepositoryMarkedTargets(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRelationRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "author")
	reader := testutil.CreateUser(t, db, "reader")
	soup := testutil.CreateRecipe(t, db, author, "soup", nil)
	salad := testutil.CreateRecipe(t, db, author, "salad", nil)
	cake := testutil.CreateRecipe(t, db, author, "cake", nil)

	testutil.AddFavorite(t, db, reader, soup)
	testutil.AddFavorite(t, db, reader, cake)
	testutil.AddFavorite(t, db, author, salad)

	marked, err := repo.MarkedTargets(ctx, KindFavorite, reader.ID, []uuid.UUID{soup.ID, salad.ID, cake.ID})
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]bool{soup.ID: true, cake.ID: true}, marked)

	marked, err = repo.MarkedTargets(ctx, KindShoppingCart, reader.ID, []uuid.UUID{soup.ID})
	require.NoError(t, err)
	assert.Empty(t, marked)
}

func TestRelationServiceOnDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewRelationService(NewRelationRepository(db), nil)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "author")
	recipe := testutil.CreateRecipe(t, db, author, "soup", nil)
	userID, recipeID := author.ID.String(), recipe.ID.String()

	require.NoError(t, service.AddMarker(ctx, KindShoppingCart, userID, recipeID))
	assert.Error(t, service.AddMarker(ctx, KindShoppingCart, userID, recipeID))
	require.NoError(t, service.RemoveMarker(ctx, KindShoppingCart, userID, recipeID))
	assert.Error(t, service.RemoveMarker(ctx, KindShoppingCart, userID, recipeID))
}

// SQLite in tests runs on a single connection, so the goroutines are
// serialised by the pool. Every one still goes through the
// ON CONFLICT DO NOTHING insert and its RowsAffected check.
func TestConcurrentAddsOnDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewRelationService(NewRelationRepository(db), nil)

	author := testutil.CreateUser(t, db, "author")
	reader := testutil.CreateUser(t, db, "reader")
	recipe := testutil.CreateRecipe(t, db, author, "soup", nil)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- service.AddMarker(context.Background(), KindShoppingCart, reader.ID.String(), recipe.ID.String())
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadyInShoppingCart)
	}
	assert.Equal(t, 1, succeeded)

	var entries int64
	require.NoError(t, db.Model(&entities.CartEntry{}).Count(&entries).Error)
	assert.Equal(t, int64(1), entries)
}
