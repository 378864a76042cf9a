package migration

import (
	"fmt"

	"foodgram/entities"
	"foodgram/internal/utils/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates every table. Models are listed parents first so
// foreign keys always point at an existing table.
func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"ingredient", &entities.Ingredient{}},
		{"tag", &entities.Tag{}},
		{"recipe", &entities.Recipe{}},
		{"recipe ingredient", &entities.RecipeIngredient{}},
		{"favorite", &entities.Favorite{}},
		{"cart entry", &entities.CartEntry{}},
		{"subscription", &entities.Subscription{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			logger.L.Error("migration failed", zap.String("model", m.name), zap.Error(err))
			return fmt.Errorf("migrate %s: %w", m.name, err)
		}
	}

	logger.L.Info("database migration complete")
	return nil
}
