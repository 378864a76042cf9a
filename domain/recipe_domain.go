package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes          = "success get recipes"
	MessageSuccessGetRecipeDetail     = "success get recipe detail"
	MessageSuccessCreateRecipe        = "recipe created successfully"
	MessageSuccessUpdateRecipe        = "recipe updated successfully"
	MessageSuccessDeleteRecipe        = "recipe deleted successfully"
	MessageSuccessAddFavorite         = "recipe added to favorites"
	MessageSuccessAddShoppingCart     = "recipe added to shopping cart"
	MessageSuccessSendShoppingList    = "shopping list sent"
	MessageFailedGetRecipes           = "failed to get recipes"
	MessageFailedGetRecipeDetail      = "failed to get recipe detail"
	MessageFailedCreateRecipe         = "failed to create recipe"
	MessageFailedUpdateRecipe         = "failed to update recipe"
	MessageFailedDeleteRecipe         = "failed to delete recipe"
	MessageFailedAddFavorite          = "failed to add recipe to favorites"
	MessageFailedRemoveFavorite       = "failed to remove recipe from favorites"
	MessageFailedAddShoppingCart      = "failed to add recipe to shopping cart"
	MessageFailedRemoveShoppingCart   = "failed to remove recipe from shopping cart"
	MessageFailedDownloadShoppingList = "failed to build shopping list"
	MessageFailedSendShoppingList     = "failed to send shopping list"

	ErrRecipeNotFound           = errors.New("Рецепт не найден.")
	ErrUnauthorizedRecipeAccess = errors.New("Изменять рецепт может только автор.")
	ErrInvalidImage             = errors.New("Недопустимое изображение.")
	ErrImageRequired            = errors.New("Загрузите фото блюда.")
	ErrRecipeNameRequired       = errors.New("Укажите название рецепта.")
	ErrRecipeTextRequired       = errors.New("Добавьте описание рецепта.")

	ErrAtLeastOneTagRequired        = errors.New("Нужно добавить хотя бы один тег.")
	ErrAtLeastOneIngredientRequired = errors.New("Нужно добавить хотя бы один ингредиент.")
	ErrDuplicateIngredient          = errors.New("Два идентичных ингредиента недопустимы.")
	ErrAmountBelowMinimum           = errors.New("Введите 1 или более ингридиетов.")
	ErrCookingTimeBelowMinimum      = errors.New("Время приготовления не может быть меньше одной минуты.")
)

type (
	RecipeIngredientRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Amount int    `json:"amount"`
	}

	CreateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required,max=200"`
		Text        string                    `json:"text" validate:"required"`
		Image       string                    `json:"image" validate:"required"`
		CookingTime int                       `json:"cooking_time"`
		Tags        []string                  `json:"tags" validate:"dive,uuid"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	}

	// UpdateRecipeRequest is a partial update: nil fields are left untouched.
	UpdateRecipeRequest struct {
		Name        *string                    `json:"name" validate:"omitempty,max=200"`
		Text        *string                    `json:"text"`
		Image       *string                    `json:"image"`
		CookingTime *int                       `json:"cooking_time"`
		Tags        *[]string                  `json:"tags" validate:"omitempty,dive,uuid"`
		Ingredients *[]RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	RecipeFilter struct {
		AuthorID         string
		Tags             []string
		IsFavorited      *bool
		IsInShoppingCart *bool
		Page             int
		Limit            int
	}

	RecipeIngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               string                     `json:"id"`
		Author           UserResponse               `json:"author"`
		Tags             []TagResponse              `json:"tags"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
		Name             string                     `json:"name"`
		Image            string                     `json:"image"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
		CreatedAt        time.Time                  `json:"created_at"`
	}

	// RecipeMinifiedResponse is the short view returned by the favorite and
	// shopping cart actions and nested into subscriptions.
	RecipeMinifiedResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	RecipeListResponse struct {
		Recipes    []RecipeResponse `json:"recipes"`
		Pagination Pagination       `json:"pagination"`
	}
)
