package shoppinglist

import (
	"context"

	"foodgram/entities"

	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		GetCartIngredients(ctx context.Context, userID string) ([]entities.RecipeIngredient, error)
		GetUserEmail(ctx context.Context, userID string) (string, error)
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

// GetCartIngredients returns every ingredient line of every recipe in the
// user's cart, with the catalog ingredient loaded.
func (r *shoppingListRepository) GetCartIngredients(ctx context.Context, userID string) ([]entities.RecipeIngredient, error) {
	var lines []entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Joins("JOIN cart_entries ON cart_entries.recipe_id = recipe_ingredients.recipe_id").
		Where("cart_entries.user_id = ?", userID).
		Preload("Ingredient").
		Order("recipe_ingredients.ingredient_id").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *shoppingListRepository) GetUserEmail(ctx context.Context, userID string) (string, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Select("email").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		return "", err
	}
	return user.Email, nil
}
