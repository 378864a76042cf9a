package handlers

import (
	"errors"

	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/internal/utils/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	notFoundErrors = []error{
		domain.ErrRecipeNotFound,
		domain.ErrUserNotFound,
		domain.ErrTagNotFound,
		domain.ErrIngredientNotFound,
	}

	forbiddenErrors = []error{
		domain.ErrUnauthorizedRecipeAccess,
		domain.ErrUserNotAllowed,
	}

	unauthorizedErrors = []error{
		domain.ErrTokenNotFound,
		domain.ErrTokenInvalid,
		domain.ErrTokenExpired,
	}

	badRequestErrors = []error{
		domain.ErrParseUUID,
		domain.ErrMarkerExists,
		domain.ErrMarkerNotFound,
		domain.ErrSelfSubscription,
		domain.ErrUnknownRelation,
		domain.ErrAtLeastOneTagRequired,
		domain.ErrAtLeastOneIngredientRequired,
		domain.ErrDuplicateIngredient,
		domain.ErrAmountBelowMinimum,
		domain.ErrCookingTimeBelowMinimum,
		domain.ErrInvalidImage,
		domain.ErrImageRequired,
		domain.ErrRecipeNameRequired,
		domain.ErrRecipeTextRequired,
		domain.ErrEmailAlreadyExists,
		domain.ErrUsernameAlreadyExists,
		domain.ErrInvalidCredentials,
		domain.ErrWrongPassword,
		domain.ErrTagExists,
		domain.ErrIngredientInUse,
	}
)

func errorStatus(err error) int {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return fiber.StatusBadRequest
	}
	switch {
	case isAny(err, notFoundErrors):
		return fiber.StatusNotFound
	case isAny(err, forbiddenErrors):
		return fiber.StatusForbidden
	case isAny(err, unauthorizedErrors):
		return fiber.StatusUnauthorized
	case isAny(err, badRequestErrors):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// handleError writes err with the status its kind maps to. Unexpected errors
// are logged and answered with a generic message.
func handleError(c *fiber.Ctx, message string, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.L.Error(message,
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return presenters.ErrorResponse(c, status, domain.MessageFailedProcessRequest, errors.New(message))
	}
	return presenters.ErrorResponse(c, status, message, err)
}

func currentUser(c *fiber.Ctx) (string, string) {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return userID, role
}
