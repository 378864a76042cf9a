package user

import (
	"context"
	"errors"
	"strings"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils"
	"foodgram/pkg/jwt"
	"foodgram/pkg/recipe"
	"foodgram/pkg/relation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		GetUser(ctx context.Context, id, viewerID string) (domain.UserResponse, error)
		GetUsers(ctx context.Context, page, limit int, viewerID string) (domain.UserListResponse, error)
		SetPassword(ctx context.Context, userID string, req domain.SetPasswordRequest) error
		GetSubscriptions(ctx context.Context, userID string, page, limit, recipesLimit int) (domain.SubscriptionListResponse, error)
		Subscribe(ctx context.Context, authorID, userID string, recipesLimit int) (domain.SubscriptionResponse, error)
		Unsubscribe(ctx context.Context, authorID, userID string) error
	}

	userService struct {
		userRepository   UserRepository
		recipeRepository recipe.RecipeRepository
		relationService  relation.RelationService
		jwtService       jwt.JWTService
	}
)

func NewUserService(
	userRepository UserRepository,
	recipeRepository recipe.RecipeRepository,
	relationService relation.RelationService,
	jwtService jwt.JWTService,
) UserService {
	return &userService{
		userRepository:   userRepository,
		recipeRepository: recipeRepository,
		relationService:  relationService,
		jwtService:       jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.userRepository.CheckEmailExists(ctx, email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if exists {
		return domain.UserResponse{}, domain.ErrEmailAlreadyExists
	}

	exists, err = s.userRepository.CheckUsernameExists(ctx, req.Username)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if exists {
		return domain.UserResponse{}, domain.ErrUsernameAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.UserResponse{}, domain.ErrPasswordHashingFailed
	}

	user := &entities.User{
		Email:     email,
		Username:  req.Username,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Password:  hashed,
		Role:      domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user, false), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{AuthToken: token}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user, false), nil
}

func (s *userService) GetUser(ctx context.Context, id, viewerID string) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return domain.UserResponse{}, err
	}

	subscribed, err := s.relationService.MarkedTargets(ctx, relation.KindSubscription, viewerID, []string{user.ID.String()})
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user, subscribed[user.ID.String()]), nil
}

func (s *userService) GetUsers(ctx context.Context, page, limit int, viewerID string) (domain.UserListResponse, error) {
	page, limit = utils.NormalizePage(page, limit)

	users, total, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return domain.UserListResponse{}, err
	}

	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID.String())
	}
	subscribed, err := s.relationService.MarkedTargets(ctx, relation.KindSubscription, viewerID, ids)
	if err != nil {
		return domain.UserListResponse{}, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user, subscribed[user.ID.String()]))
	}

	return domain.UserListResponse{
		Users:      response,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

func (s *userService) SetPassword(ctx context.Context, userID string, req domain.SetPasswordRequest) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(user.Password, req.CurrentPassword) {
		return domain.ErrWrongPassword
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return domain.ErrPasswordHashingFailed
	}
	return s.userRepository.UpdatePassword(ctx, user.ID.String(), hashed)
}

func (s *userService) GetSubscriptions(ctx context.Context, userID string, page, limit, recipesLimit int) (domain.SubscriptionListResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.SubscriptionListResponse{}, domain.ErrParseUUID
	}
	page, limit = utils.NormalizePage(page, limit)

	authors, total, err := s.userRepository.GetSubscribedAuthors(ctx, userID, page, limit)
	if err != nil {
		return domain.SubscriptionListResponse{}, err
	}

	ids := make([]string, 0, len(authors))
	for _, author := range authors {
		ids = append(ids, author.ID.String())
	}
	counts, err := s.recipeRepository.CountRecipesByAuthors(ctx, ids)
	if err != nil {
		return domain.SubscriptionListResponse{}, err
	}

	subscriptions := make([]domain.SubscriptionResponse, 0, len(authors))
	for _, author := range authors {
		subscription, err := s.toSubscriptionResponse(ctx, author, counts[author.ID.String()], recipesLimit)
		if err != nil {
			return domain.SubscriptionListResponse{}, err
		}
		subscriptions = append(subscriptions, subscription)
	}

	return domain.SubscriptionListResponse{
		Subscriptions: subscriptions,
		Pagination:    domain.NewPagination(page, limit, total),
	}, nil
}

// Subscribe rejects a self-subscription before looking the author up, so the
// caller gets the same answer whether or not the id exists.
func (s *userService) Subscribe(ctx context.Context, authorID, userID string, recipesLimit int) (domain.SubscriptionResponse, error) {
	if authorID == userID {
		return domain.SubscriptionResponse{}, domain.ErrSelfSubscription
	}

	author, err := s.getUser(ctx, authorID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	if err := s.relationService.AddMarker(ctx, relation.KindSubscription, userID, author.ID.String()); err != nil {
		return domain.SubscriptionResponse{}, err
	}

	counts, err := s.recipeRepository.CountRecipesByAuthors(ctx, []string{author.ID.String()})
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	return s.toSubscriptionResponse(ctx, author, counts[author.ID.String()], recipesLimit)
}

func (s *userService) Unsubscribe(ctx context.Context, authorID, userID string) error {
	author, err := s.getUser(ctx, authorID)
	if err != nil {
		return err
	}
	return s.relationService.RemoveMarker(ctx, relation.KindSubscription, userID, author.ID.String())
}

func (s *userService) getUser(ctx context.Context, id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUserNotFound
	}
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) toSubscriptionResponse(ctx context.Context, author *entities.User, count int64, recipesLimit int) (domain.SubscriptionResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByAuthor(ctx, author.ID.String(), recipesLimit)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	minified := make([]domain.RecipeMinifiedResponse, 0, len(recipes))
	for _, r := range recipes {
		minified = append(minified, recipe.ToRecipeMinified(*r))
	}

	return domain.SubscriptionResponse{
		UserResponse: toUserResponse(author, true),
		Recipes:      minified,
		RecipesCount: count,
	}, nil
}

func toUserResponse(user *entities.User, subscribed bool) domain.UserResponse {
	return domain.UserResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: subscribed,
	}
}
