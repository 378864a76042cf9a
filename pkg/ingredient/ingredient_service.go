package ingredient

import (
	"context"
	"errors"
	"strings"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.IngredientRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string) error
		GetIngredient(ctx context.Context, id string) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context, namePrefix string) ([]domain.IngredientResponse, error)
		LoadIngredients(ctx context.Context, items []domain.IngredientRequest) (int, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func ToIngredientResponse(ingredient entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:              ingredient.ID.String(),
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{
		Name:            strings.TrimSpace(req.Name),
		MeasurementUnit: strings.TrimSpace(req.MeasurementUnit),
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return ToIngredientResponse(*ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.getIngredient(ctx, id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient.Name = strings.TrimSpace(req.Name)
	ingredient.MeasurementUnit = strings.TrimSpace(req.MeasurementUnit)
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return ToIngredientResponse(*ingredient), nil
}

// DeleteIngredient refuses to remove an ingredient any recipe still lists.
// The RESTRICT foreign key backs this up if a recipe is saved concurrently.
func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	if _, err := s.getIngredient(ctx, id); err != nil {
		return err
	}

	inUse, err := s.ingredientRepository.IsIngredientInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrIngredientInUse
	}

	deleted, err := s.ingredientRepository.DeleteIngredient(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrIngredientInUse
		}
		return err
	}
	if !deleted {
		return domain.ErrIngredientNotFound
	}
	return nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.getIngredient(ctx, id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	return ToIngredientResponse(*ingredient), nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, namePrefix string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, strings.TrimSpace(namePrefix))
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, ToIngredientResponse(*ingredient))
	}
	return response, nil
}

// LoadIngredients bulk-inserts catalog entries, skipping blank items and
// exact name+unit duplicates. It returns the number of rows added.
func (s *ingredientService) LoadIngredients(ctx context.Context, items []domain.IngredientRequest) (int, error) {
	added := 0
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		unit := strings.TrimSpace(item.MeasurementUnit)
		if name == "" || unit == "" {
			continue
		}
		created, err := s.ingredientRepository.CreateIfMissing(ctx, &entities.Ingredient{
			Name:            name,
			MeasurementUnit: unit,
		})
		if err != nil {
			return added, err
		}
		if created {
			added++
		}
	}
	return added, nil
}

func (s *ingredientService) getIngredient(ctx context.Context, id string) (*entities.Ingredient, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrIngredientNotFound
	}
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return ingredient, nil
}
