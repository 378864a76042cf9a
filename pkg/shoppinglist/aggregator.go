package shoppinglist

import (
	"bytes"
	"sort"
	"strconv"

	"foodgram/domain"
	"foodgram/entities"
)

// Aggregate folds recipe lines into one item per catalog ingredient. Lines are
// grouped by ingredient id, never by name, and summed as integers. Items are
// ordered by name and then id.
func Aggregate(lines []entities.RecipeIngredient) []domain.ShoppingListItem {
	index := make(map[string]int, len(lines))
	items := make([]domain.ShoppingListItem, 0, len(lines))

	for _, line := range lines {
		if line.Ingredient == nil {
			continue
		}
		id := line.IngredientID.String()
		if i, ok := index[id]; ok {
			items[i].TotalAmount += int64(line.Amount)
			continue
		}
		index[id] = len(items)
		items = append(items, domain.ShoppingListItem{
			IngredientID:    id,
			Name:            line.Ingredient.Name,
			MeasurementUnit: line.Ingredient.MeasurementUnit,
			TotalAmount:     int64(line.Amount),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].IngredientID < items[j].IngredientID
	})
	return items
}

// Render produces the downloadable text document:
//
//	Список покупок:
//
//	<name>, <amount> <unit>
func Render(items []domain.ShoppingListItem) []byte {
	var buf bytes.Buffer
	buf.WriteString(domain.ShoppingListHeader)
	buf.WriteString("\n\n")
	for _, item := range items {
		buf.WriteString(item.Name)
		buf.WriteString(", ")
		buf.WriteString(strconv.FormatInt(item.TotalAmount, 10))
		buf.WriteByte(' ')
		buf.WriteString(item.MeasurementUnit)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
