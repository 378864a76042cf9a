package recipe

import (
	"foodgram/domain"
)

const (
	minIngredientAmount = 1
	minCookingTime      = 1
)

// ValidateTags rejects an empty tag set. Repeated ids collapse into one.
func ValidateTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, domain.ErrAtLeastOneTagRequired
	}
	seen := make(map[string]struct{}, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
	}
	return unique, nil
}

// ValidateIngredients checks amounts first and then that no ingredient id is
// listed twice. The same rules apply on create and on update.
func ValidateIngredients(items []domain.RecipeIngredientRequest) ([]domain.RecipeIngredientRequest, error) {
	if len(items) == 0 {
		return nil, domain.ErrAtLeastOneIngredientRequired
	}
	for _, item := range items {
		if item.Amount < minIngredientAmount {
			return nil, domain.ErrAmountBelowMinimum
		}
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			return nil, domain.ErrDuplicateIngredient
		}
		seen[item.ID] = struct{}{}
	}
	return items, nil
}

func ValidateCookingTime(minutes int) error {
	if minutes < minCookingTime {
		return domain.ErrCookingTimeBelowMinimum
	}
	return nil
}
