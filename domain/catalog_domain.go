package domain

import (
	"errors"
)

var (
	MessageSuccessGetTags          = "success get tags"
	MessageSuccessCreateTag        = "tag created successfully"
	MessageSuccessUpdateTag        = "tag updated successfully"
	MessageSuccessDeleteTag        = "tag deleted successfully"
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageFailedGetTags           = "failed to get tags"
	MessageFailedCreateTag         = "failed to create tag"
	MessageFailedUpdateTag         = "failed to update tag"
	MessageFailedDeleteTag         = "failed to delete tag"
	MessageFailedGetIngredients    = "failed to get ingredients"
	MessageFailedCreateIngredient  = "failed to create ingredient"
	MessageFailedUpdateIngredient  = "failed to update ingredient"
	MessageFailedDeleteIngredient  = "failed to delete ingredient"

	ErrTagNotFound        = errors.New("Тэг не найден.")
	ErrTagExists          = errors.New("Тэг с таким названием, цветом или slug уже существует.")
	ErrIngredientNotFound = errors.New("Ингредиент не найден.")
	ErrIngredientInUse    = errors.New("Ингредиент используется в рецептах и не может быть удалён.")
)

type (
	TagRequest struct {
		Name  string `json:"name" validate:"required,max=95"`
		Color string `json:"color" validate:"required,len=7,startswith=#,hexcolor"`
		Slug  string `json:"slug" validate:"required,max=200,slug"`
	}

	TagResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Slug  string `json:"slug"`
	}

	IngredientRequest struct {
		Name            string `json:"name" validate:"required,max=200"`
		MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
	}

	IngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
)
