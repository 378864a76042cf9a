package recipe

import (
	"context"
	"testing"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func boolPtr(v bool) *bool {
	return &v
}

func recipeNames(recipes []*entities.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}
	return names
}

func TestGetRecipesFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	breakfast := testutil.CreateTag(t, db, "Завтрак", "#E26C2D", "breakfast")
	dinner := testutil.CreateTag(t, db, "Ужин", "#49B64E", "dinner")
	flour := testutil.CreateIngredient(t, db, "Мука", "г")

	pancakes := testutil.CreateRecipe(t, db, alice, "pancakes", []*entities.Tag{breakfast},
		testutil.Line{Ingredient: flour, Amount: 100})
	steak := testutil.CreateRecipe(t, db, bob, "steak", []*entities.Tag{dinner})
	omelette := testutil.CreateRecipe(t, db, bob, "omelette", []*entities.Tag{breakfast, dinner})

	testutil.AddFavorite(t, db, alice, steak)
	testutil.AddToCart(t, db, alice, omelette)

	page := func(filter domain.RecipeFilter) domain.RecipeFilter {
		filter.Page, filter.Limit = 1, 10
		return filter
	}

	t.Run("no filter", func(t *testing.T) {
		recipes, total, err := repo.GetRecipes(ctx, page(domain.RecipeFilter{}), "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.ElementsMatch(t, []string{"pancakes", "steak", "omelette"}, recipeNames(recipes))
	})

	t.Run("author", func(t *testing.T) {
		recipes, total, err := repo.GetRecipes(ctx, page(domain.RecipeFilter{AuthorID: bob.ID.String()}), "")
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.ElementsMatch(t, []string{"steak", "omelette"}, recipeNames(recipes))
	})

	t.Run("tags match any slug", func(t *testing.T) {
		recipes, total, err := repo.GetRecipes(ctx, page(domain.RecipeFilter{Tags: []string{"breakfast"}}), "")
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.ElementsMatch(t, []string{"pancakes", "omelette"}, recipeNames(recipes))

		recipes, total, err = repo.GetRecipes(ctx, page(domain.RecipeFilter{Tags: []string{"breakfast", "dinner"}}), "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total, "a recipe with both tags is counted once")
		assert.Len(t, recipes, 3)
	})

	t.Run("favorited", func(t *testing.T) {
		recipes, _, err := repo.GetRecipes(ctx, page(domain.RecipeFilter{IsFavorited: boolPtr(true)}), alice.ID.String())
		require.NoError(t, err)
		assert.Equal(t, []string{"steak"}, recipeNames(recipes))

		recipes, _, err = repo.GetRecipes(ctx, page(domain.RecipeFilter{IsFavorited: boolPtr(false)}), alice.ID.String())
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"pancakes", "omelette"}, recipeNames(recipes))
	})

	t.Run("in shopping cart combined with author", func(t *testing.T) {
		filter := page(domain.RecipeFilter{AuthorID: bob.ID.String(), IsInShoppingCart: boolPtr(true)})
		recipes, total, err := repo.GetRecipes(ctx, filter, alice.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, []string{"omelette"}, recipeNames(recipes))
	})

	t.Run("pagination", func(t *testing.T) {
		recipes, total, err := repo.GetRecipes(ctx, domain.RecipeFilter{Page: 2, Limit: 2}, "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, recipes, 1)
	})

	t.Run("details are loaded", func(t *testing.T) {
		recipe, err := repo.GetRecipeByID(ctx, pancakes.ID.String())
		require.NoError(t, err)
		require.NotNil(t, recipe.Author)
		assert.Equal(t, "alice", recipe.Author.Username)
		require.Len(t, recipe.Tags, 1)
		assert.Equal(t, "breakfast", recipe.Tags[0].Slug)
		require.Len(t, recipe.Ingredients, 1)
		require.NotNil(t, recipe.Ingredients[0].Ingredient)
		assert.Equal(t, "Мука", recipe.Ingredients[0].Ingredient.Name)
		assert.Equal(t, 100, recipe.Ingredients[0].Amount)
	})
}

func TestUpdateRecipeReplacesLines(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "author")
	breakfast := testutil.CreateTag(t, db, "Завтрак", "#E26C2D", "breakfast")
	dinner := testutil.CreateTag(t, db, "Ужин", "#49B64E", "dinner")
	flour := testutil.CreateIngredient(t, db, "Мука", "г")
	eggs := testutil.CreateIngredient(t, db, "Яйца", "шт")

	created := testutil.CreateRecipe(t, db, author, "pancakes", []*entities.Tag{breakfast},
		testutil.Line{Ingredient: flour, Amount: 100})

	recipe, err := repo.GetRecipeByID(ctx, created.ID.String())
	require.NoError(t, err)
	recipe.Name = "crepes"

	err = repo.UpdateRecipe(ctx, recipe,
		[]entities.Tag{*dinner},
		[]entities.RecipeIngredient{{IngredientID: eggs.ID, Amount: 3}},
	)
	require.NoError(t, err)

	updated, err := repo.GetRecipeByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "crepes", updated.Name)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "dinner", updated.Tags[0].Slug)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, eggs.ID, updated.Ingredients[0].IngredientID)
	assert.Equal(t, 3, updated.Ingredients[0].Amount)

	var lines int64
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Count(&lines).Error)
	assert.Equal(t, int64(1), lines)
}

func TestDeleteRecipeRemovesDependents(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "author")
	tag := testutil.CreateTag(t, db, "Завтрак", "#E26C2D", "breakfast")
	flour := testutil.CreateIngredient(t, db, "Мука", "г")
	recipe := testutil.CreateRecipe(t, db, author, "pancakes", []*entities.Tag{tag},
		testutil.Line{Ingredient: flour, Amount: 100})
	testutil.AddFavorite(t, db, author, recipe)
	testutil.AddToCart(t, db, author, recipe)

	require.NoError(t, repo.DeleteRecipe(ctx, recipe.ID.String()))

	for _, model := range []any{&entities.Recipe{}, &entities.RecipeIngredient{}, &entities.Favorite{}, &entities.CartEntry{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}

	assert.ErrorIs(t, repo.DeleteRecipe(ctx, recipe.ID.String()), gorm.ErrRecordNotFound)
}

func TestCountRecipesByAuthors(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	carol := testutil.CreateUser(t, db, "carol")
	testutil.CreateRecipe(t, db, alice, "one", nil)
	testutil.CreateRecipe(t, db, alice, "two", nil)
	testutil.CreateRecipe(t, db, bob, "three", nil)

	counts, err := repo.CountRecipesByAuthors(ctx, []string{alice.ID.String(), bob.ID.String(), carol.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[alice.ID.String()])
	assert.Equal(t, int64(1), counts[bob.ID.String()])
	assert.Zero(t, counts[carol.ID.String()])

	recipes, err := repo.GetRecipesByAuthor(ctx, alice.ID.String(), 1)
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
}
