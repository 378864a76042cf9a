package handlers

import (
	"fmt"

	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/pkg/shoppinglist"

	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		DownloadShoppingList(c *fiber.Ctx) error
		SendShoppingList(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService) ShoppingListHandler {
	return &shoppingListHandler{shoppingListService: shoppingListService}
}

func (h *shoppingListHandler) DownloadShoppingList(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	content, err := h.shoppingListService.DownloadShoppingList(c.Context(), userID)
	if err != nil {
		return handleError(c, domain.MessageFailedDownloadShoppingList, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", domain.ShoppingListFileName))
	return c.Status(fiber.StatusOK).Send(content)
}

func (h *shoppingListHandler) SendShoppingList(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	if err := h.shoppingListService.SendShoppingList(c.Context(), userID); err != nil {
		return handleError(c, domain.MessageFailedSendShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendShoppingList)
}
