package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"foodgram/domain"
	"foodgram/internal/utils/logger"
	"foodgram/pkg/ingredient"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LoadIngredients reads a JSON array of {"name", "measurement_unit"} objects
// from path and adds the entries missing from the catalog.
func LoadIngredients(ctx context.Context, db *gorm.DB, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	items, err := ParseIngredients(data)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	service := ingredient.NewIngredientService(ingredient.NewIngredientRepository(db))
	added, err := service.LoadIngredients(ctx, items)
	if err != nil {
		return added, err
	}

	logger.L.Info("ingredients loaded",
		zap.String("file", path),
		zap.Int("read", len(items)),
		zap.Int("added", added),
	)
	return added, nil
}

func ParseIngredients(data []byte) ([]domain.IngredientRequest, error) {
	var items []domain.IngredientRequest
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
