package ingredient

import (
	"context"
	"testing"

	"foodgram/domain"
	"foodgram/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientSearchByPrefix(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))
	ctx := context.Background()

	added, err := service.LoadIngredients(ctx, []domain.IngredientRequest{
		{Name: "мука пшеничная", MeasurementUnit: "г"},
		{Name: "Мука ржаная", MeasurementUnit: "г"},
		{Name: "молоко", MeasurementUnit: "мл"},
		{Name: "mustard", MeasurementUnit: "g"},
		{Name: "Mushrooms", MeasurementUnit: "g"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, added)

	found, err := service.GetIngredients(ctx, "MU")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Mushrooms", found[0].Name)
	assert.Equal(t, "mustard", found[1].Name)

	all, err := service.GetIngredients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := service.GetIngredients(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLoadIngredientsSkipsDuplicates(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))
	ctx := context.Background()

	items := []domain.IngredientRequest{
		{Name: "соль", MeasurementUnit: "г"},
		{Name: "соль", MeasurementUnit: "щепотка"},
		{Name: "соль", MeasurementUnit: "г"},
		{Name: " ", MeasurementUnit: "г"},
	}

	added, err := service.LoadIngredients(ctx, items)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = service.LoadIngredients(ctx, items)
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestDeleteIngredientInUse(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "author")
	flour := testutil.CreateIngredient(t, db, "Мука", "г")
	salt := testutil.CreateIngredient(t, db, "Соль", "г")
	testutil.CreateRecipe(t, db, author, "bread", nil, testutil.Line{Ingredient: flour, Amount: 500})

	assert.ErrorIs(t, service.DeleteIngredient(ctx, flour.ID.String()), domain.ErrIngredientInUse)

	require.NoError(t, service.DeleteIngredient(ctx, salt.ID.String()))
	assert.ErrorIs(t, service.DeleteIngredient(ctx, salt.ID.String()), domain.ErrIngredientNotFound)
	assert.ErrorIs(t, service.DeleteIngredient(ctx, uuid.NewString()), domain.ErrIngredientNotFound)
}

func TestUpdateIngredient(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))
	ctx := context.Background()

	created, err := service.CreateIngredient(ctx, domain.IngredientRequest{Name: " сахар ", MeasurementUnit: "г"})
	require.NoError(t, err)
	assert.Equal(t, "сахар", created.Name)

	updated, err := service.UpdateIngredient(ctx, created.ID, domain.IngredientRequest{Name: "сахар", MeasurementUnit: "ст. л."})
	require.NoError(t, err)
	assert.Equal(t, "ст. л.", updated.MeasurementUnit)

	got, err := service.GetIngredient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
