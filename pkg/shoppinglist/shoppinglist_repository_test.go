package shoppinglist

import (
	"context"
	"testing"

	"foodgram/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetCartIngredients(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewShoppingListRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "author")
	buyer := testutil.CreateUser(t, db, "buyer")
	other := testutil.CreateUser(t, db, "other")

	flour := testutil.CreateIngredient(t, db, "Мука", "г")
	eggs := testutil.CreateIngredient(t, db, "Яйца", "шт")
	milk := testutil.CreateIngredient(t, db, "Молоко", "мл")

	pancakes := testutil.CreateRecipe(t, db, author, "pancakes", nil,
		testutil.Line{Ingredient: flour, Amount: 100},
		testutil.Line{Ingredient: eggs, Amount: 2},
	)
	bread := testutil.CreateRecipe(t, db, author, "bread", nil,
		testutil.Line{Ingredient: flour, Amount: 50},
	)
	latte := testutil.CreateRecipe(t, db, author, "latte", nil,
		testutil.Line{Ingredient: milk, Amount: 200},
	)

	testutil.AddToCart(t, db, buyer, pancakes)
	testutil.AddToCart(t, db, buyer, bread)
	testutil.AddToCart(t, db, other, latte)

	lines, err := repo.GetCartIngredients(ctx, buyer.ID.String())
	require.NoError(t, err)
	require.Len(t, lines, 3)
	for _, l := range lines {
		require.NotNil(t, l.Ingredient)
		assert.NotEqual(t, milk.ID, l.IngredientID)
	}

	items := Aggregate(lines)
	require.Len(t, items, 2)
	assert.Equal(t, "Мука", items[0].Name)
	assert.Equal(t, int64(150), items[0].TotalAmount)
	assert.Equal(t, "Яйца", items[1].Name)
	assert.Equal(t, int64(2), items[1].TotalAmount)

	empty, err := repo.GetCartIngredients(ctx, author.ID.String())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetUserEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewShoppingListRepository(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "cook")

	email, err := repo.GetUserEmail(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", email)

	_, err = repo.GetUserEmail(ctx, uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
