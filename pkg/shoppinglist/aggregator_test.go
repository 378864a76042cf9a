package shoppinglist

import (
	"testing"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingredient(name, unit string) *entities.Ingredient {
	return &entities.Ingredient{
		Base:            entities.Base{ID: uuid.New()},
		Name:            name,
		MeasurementUnit: unit,
	}
}

func line(i *entities.Ingredient, amount int) entities.RecipeIngredient {
	return entities.RecipeIngredient{
		IngredientID: i.ID,
		Amount:       amount,
		Ingredient:   i,
	}
}

func TestAggregateSumsByIngredient(t *testing.T) {
	flour := ingredient("Мука", "г")
	eggs := ingredient("Яйца", "шт")

	items := Aggregate([]entities.RecipeIngredient{
		line(flour, 100),
		line(eggs, 2),
		line(flour, 50),
	})

	require.Len(t, items, 2)
	assert.Equal(t, domain.ShoppingListItem{
		IngredientID:    flour.ID.String(),
		Name:            "Мука",
		MeasurementUnit: "г",
		TotalAmount:     150,
	}, items[0])
	assert.Equal(t, int64(2), items[1].TotalAmount)
	assert.Equal(t, "Яйца", items[1].Name)
}

func TestAggregateKeepsSameNamedIngredientsApart(t *testing.T) {
	saltGrams := ingredient("Соль", "г")
	saltPinch := ingredient("Соль", "щепотка")

	items := Aggregate([]entities.RecipeIngredient{
		line(saltGrams, 5),
		line(saltPinch, 1),
		line(saltGrams, 5),
	})

	require.Len(t, items, 2)
	totals := map[string]int64{}
	for _, item := range items {
		totals[item.MeasurementUnit] = item.TotalAmount
	}
	assert.Equal(t, map[string]int64{"г": 10, "щепотка": 1}, totals)
	assert.Less(t, items[0].IngredientID, items[1].IngredientID)
}

func TestAggregateIsDeterministic(t *testing.T) {
	a := ingredient("Апельсин", "шт")
	b := ingredient("Банан", "шт")
	c := ingredient("Вишня", "г")

	first := Aggregate([]entities.RecipeIngredient{line(c, 1), line(a, 1), line(b, 1)})
	second := Aggregate([]entities.RecipeIngredient{line(b, 1), line(c, 1), line(a, 1)})

	assert.Equal(t, first, second)
	assert.Equal(t, Render(first), Render(second))
	assert.Equal(t, "Апельсин", first[0].Name)
	assert.Equal(t, "Вишня", first[2].Name)
}

func TestAggregateDoesNotOverflowInt(t *testing.T) {
	big := ingredient("Вода", "мл")
	const max32 = 1<<31 - 1

	items := Aggregate([]entities.RecipeIngredient{line(big, max32), line(big, max32)})

	require.Len(t, items, 1)
	assert.Equal(t, int64(2*max32), items[0].TotalAmount)
}

func TestAggregateSkipsLinesWithoutIngredient(t *testing.T) {
	items := Aggregate([]entities.RecipeIngredient{{IngredientID: uuid.New(), Amount: 3}})
	assert.Empty(t, items)
}

func TestRender(t *testing.T) {
	t.Run("empty list is header only", func(t *testing.T) {
		assert.Equal(t, "Список покупок:\n\n", string(Render(nil)))
	})

	t.Run("one line per item", func(t *testing.T) {
		out := Render([]domain.ShoppingListItem{
			{Name: "Мука", MeasurementUnit: "г", TotalAmount: 150},
			{Name: "Яйца", MeasurementUnit: "шт", TotalAmount: 2},
		})
		assert.Equal(t, "Список покупок:\n\nМука, 150 г\nЯйца, 2 шт\n", string(out))
	})
}
