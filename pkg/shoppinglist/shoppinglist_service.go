package shoppinglist

import (
	"context"
	"errors"

	"foodgram/domain"
	"foodgram/internal/metrics"
	"foodgram/internal/utils/logger"
	"foodgram/internal/utils/mailing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const mailSubject = "Ваш список покупок"

type (
	ShoppingListService interface {
		BuildShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItem, error)
		DownloadShoppingList(ctx context.Context, userID string) ([]byte, error)
		SendShoppingList(ctx context.Context, userID string) error
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		mailer                 mailing.Mailer
		metrics                metrics.Recorder
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository, mailer mailing.Mailer, recorder metrics.Recorder) ShoppingListService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		mailer:                 mailer,
		metrics:                recorder,
	}
}

func (s *shoppingListService) BuildShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItem, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	lines, err := s.shoppingListRepository.GetCartIngredients(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := Aggregate(lines)
	s.metrics.RecordShoppingListBuilt(len(items))
	return items, nil
}

func (s *shoppingListService) DownloadShoppingList(ctx context.Context, userID string) ([]byte, error) {
	items, err := s.BuildShoppingList(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Render(items), nil
}

func (s *shoppingListService) SendShoppingList(ctx context.Context, userID string) error {
	content, err := s.DownloadShoppingList(ctx, userID)
	if err != nil {
		return err
	}

	email, err := s.shoppingListRepository.GetUserEmail(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	err = s.mailer.SendMail(email, mailSubject, string(content), mailing.Attachment{
		FileName: domain.ShoppingListFileName,
		Content:  content,
	})
	if err != nil {
		logger.L.Error("failed to send shopping list", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	logger.L.Info("shopping list sent", zap.String("user_id", userID))
	return nil
}
