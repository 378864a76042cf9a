package domain

const (
	ShoppingListHeader   = "Список покупок:"
	ShoppingListFileName = "shopping-list.txt"
)

type (
	// ShoppingListItem is the summed amount of one catalog ingredient across
	// every recipe in a cart.
	ShoppingListItem struct {
		IngredientID    string `json:"ingredient_id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		TotalAmount     int64  `json:"total_amount"`
	}
)
