package recipe

import (
	"context"
	"errors"
	"html"
	"strings"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils"
	"foodgram/internal/utils/logger"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/relation"
	"foodgram/pkg/tag"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const imageFolder = "recipes"

var textPolicy = bluemonday.StrictPolicy()

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID, role string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id, userID, role string) error
		GetRecipe(ctx context.Context, id, viewerID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID string) (domain.RecipeListResponse, error)
		AddFavorite(ctx context.Context, recipeID, userID string) (domain.RecipeMinifiedResponse, error)
		RemoveFavorite(ctx context.Context, recipeID, userID string) error
		AddToShoppingCart(ctx context.Context, recipeID, userID string) (domain.RecipeMinifiedResponse, error)
		RemoveFromShoppingCart(ctx context.Context, recipeID, userID string) error
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		relationService      relation.RelationService
		storage              storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	relationService relation.RelationService,
	storage storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		relationService:      relationService,
		storage:              storage,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	lines, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := ValidateCookingTime(req.CookingTime); err != nil {
		return domain.RecipeResponse{}, err
	}

	name, err := sanitizeRequired(req.Name, domain.ErrRecipeNameRequired)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	text, err := sanitizeRequired(req.Text, domain.ErrRecipeTextRequired)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	imageURL, imageKey, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Text:        text,
		ImageURL:    imageURL,
		CookingTime: req.CookingTime,
		Tags:        tags,
		Ingredients: lines,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		s.deleteImage(ctx, imageKey)
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipe(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID, role string) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if !canModify(recipe, userID, role) {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	var tags []entities.Tag
	if req.Tags != nil {
		if tags, err = s.resolveTags(ctx, *req.Tags); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	var lines []entities.RecipeIngredient
	if req.Ingredients != nil {
		if lines, err = s.resolveIngredients(ctx, *req.Ingredients); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	if req.CookingTime != nil {
		if err := ValidateCookingTime(*req.CookingTime); err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.CookingTime = *req.CookingTime
	}
	if req.Name != nil {
		if recipe.Name, err = sanitizeRequired(*req.Name, domain.ErrRecipeNameRequired); err != nil {
			return domain.RecipeResponse{}, err
		}
	}
	if req.Text != nil {
		if recipe.Text, err = sanitizeRequired(*req.Text, domain.ErrRecipeTextRequired); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	oldImageKey := ""
	newImageKey := ""
	if req.Image != nil {
		imageURL, imageKey, err := s.uploadImage(ctx, *req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		oldImageKey = s.storage.GetObjectKeyFromLink(recipe.ImageURL)
		newImageKey = imageKey
		recipe.ImageURL = imageURL
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tags, lines); err != nil {
		s.deleteImage(ctx, newImageKey)
		return domain.RecipeResponse{}, err
	}
	s.deleteImage(ctx, oldImageKey)

	return s.GetRecipe(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id, userID, role string) error {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(recipe, userID, role) {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe.ID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	s.deleteImage(ctx, s.storage.GetObjectKeyFromLink(recipe.ImageURL))
	return nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id, viewerID string) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	responses, err := s.toRecipeResponses(ctx, []*entities.Recipe{recipe}, viewerID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return responses[0], nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID string) (domain.RecipeListResponse, error) {
	filter.Page, filter.Limit = utils.NormalizePage(filter.Page, filter.Limit)

	// Personal filters mean nothing without a viewer.
	if viewerID == "" && (filter.IsFavorited != nil || filter.IsInShoppingCart != nil) {
		return domain.RecipeListResponse{
			Recipes:    []domain.RecipeResponse{},
			Pagination: domain.NewPagination(filter.Page, filter.Limit, 0),
		}, nil
	}

	if filter.AuthorID != "" {
		if _, err := uuid.Parse(filter.AuthorID); err != nil {
			return domain.RecipeListResponse{}, domain.ErrUserNotFound
		}
	}

	recipes, total, err := s.recipeRepository.GetRecipes(ctx, filter, viewerID)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	responses, err := s.toRecipeResponses(ctx, recipes, viewerID)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	return domain.RecipeListResponse{
		Recipes:    responses,
		Pagination: domain.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func (s *recipeService) AddFavorite(ctx context.Context, recipeID, userID string) (domain.RecipeMinifiedResponse, error) {
	return s.addMarker(ctx, relation.KindFavorite, recipeID, userID)
}

func (s *recipeService) RemoveFavorite(ctx context.Context, recipeID, userID string) error {
	return s.removeMarker(ctx, relation.KindFavorite, recipeID, userID)
}

func (s *recipeService) AddToShoppingCart(ctx context.Context, recipeID, userID string) (domain.RecipeMinifiedResponse, error) {
	return s.addMarker(ctx, relation.KindShoppingCart, recipeID, userID)
}

func (s *recipeService) RemoveFromShoppingCart(ctx context.Context, recipeID, userID string) error {
	return s.removeMarker(ctx, relation.KindShoppingCart, recipeID, userID)
}

func (s *recipeService) addMarker(ctx context.Context, kind relation.Kind, recipeID, userID string) (domain.RecipeMinifiedResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeMinifiedResponse{}, err
	}
	if err := s.relationService.AddMarker(ctx, kind, userID, recipe.ID.String()); err != nil {
		return domain.RecipeMinifiedResponse{}, err
	}
	return ToRecipeMinified(*recipe), nil
}

func (s *recipeService) removeMarker(ctx context.Context, kind relation.Kind, recipeID, userID string) error {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	return s.relationService.RemoveMarker(ctx, kind, userID, recipe.ID.String())
}

func (s *recipeService) getRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRecipeNotFound
	}
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// resolveTags validates the tag set and loads every referenced tag.
func (s *recipeService) resolveTags(ctx context.Context, ids []string) ([]entities.Tag, error) {
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.ErrTagNotFound
		}
		normalized = append(normalized, parsed.String())
	}

	unique, err := ValidateTags(normalized)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepository.GetTagsByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(unique) {
		return nil, domain.ErrTagNotFound
	}
	return tags, nil
}

// resolveIngredients validates the ingredient lines and turns them into
// entities, checking every ingredient exists in the catalog.
func (s *recipeService) resolveIngredients(ctx context.Context, items []domain.RecipeIngredientRequest) ([]entities.RecipeIngredient, error) {
	normalized := make([]domain.RecipeIngredientRequest, 0, len(items))
	for _, item := range items {
		parsed, err := uuid.Parse(item.ID)
		if err != nil {
			return nil, domain.ErrIngredientNotFound
		}
		normalized = append(normalized, domain.RecipeIngredientRequest{ID: parsed.String(), Amount: item.Amount})
	}

	valid, err := ValidateIngredients(normalized)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(valid))
	for _, item := range valid {
		ids = append(ids, item.ID)
	}
	found, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, domain.ErrIngredientNotFound
	}

	lines := make([]entities.RecipeIngredient, 0, len(valid))
	for _, item := range valid {
		lines = append(lines, entities.RecipeIngredient{
			IngredientID: uuid.MustParse(item.ID),
			Amount:       item.Amount,
		})
	}
	return lines, nil
}

func (s *recipeService) uploadImage(ctx context.Context, encoded string) (string, string, error) {
	if strings.TrimSpace(encoded) == "" {
		return "", "", domain.ErrImageRequired
	}
	data, err := storage.DecodeDataURI(encoded)
	if err != nil {
		return "", "", domain.ErrInvalidImage
	}

	key, err := s.storage.UploadFile(ctx, uuid.NewString(), data, imageFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) || errors.Is(err, storage.ErrEmptyFile) {
			return "", "", domain.ErrInvalidImage
		}
		return "", "", err
	}
	return s.storage.GetPublicLinkKey(key), key, nil
}

func (s *recipeService) deleteImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.DeleteFile(ctx, key); err != nil {
		logger.L.Warn("failed to delete recipe image", zap.String("key", key), zap.Error(err))
	}
}

func (s *recipeService) toRecipeResponses(ctx context.Context, recipes []*entities.Recipe, viewerID string) ([]domain.RecipeResponse, error) {
	recipeIDs := make([]string, 0, len(recipes))
	authorIDs := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID.String())
		authorIDs = append(authorIDs, recipe.AuthorID.String())
	}

	favorited, err := s.relationService.MarkedTargets(ctx, relation.KindFavorite, viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}
	inCart, err := s.relationService.MarkedTargets(ctx, relation.KindShoppingCart, viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.relationService.MarkedTargets(ctx, relation.KindSubscription, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		id := recipe.ID.String()
		responses = append(responses, toRecipeResponse(
			recipe,
			favorited[id],
			inCart[id],
			subscribed[recipe.AuthorID.String()],
		))
	}
	return responses, nil
}

func toRecipeResponse(recipe *entities.Recipe, favorited, inCart, subscribed bool) domain.RecipeResponse {
	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tags = append(tags, tag.ToTagResponse(t))
	}

	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		item := domain.RecipeIngredientResponse{
			ID:     line.IngredientID.String(),
			Amount: line.Amount,
		}
		if line.Ingredient != nil {
			item.Name = line.Ingredient.Name
			item.MeasurementUnit = line.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, item)
	}

	author := domain.UserResponse{ID: recipe.AuthorID.String(), IsSubscribed: subscribed}
	if recipe.Author != nil {
		author.Email = recipe.Author.Email
		author.Username = recipe.Author.Username
		author.FirstName = recipe.Author.FirstName
		author.LastName = recipe.Author.LastName
	}

	return domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Author:           author,
		Tags:             tags,
		Ingredients:      ingredients,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             recipe.Name,
		Image:            recipe.ImageURL,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		CreatedAt:        recipe.CreatedAt,
	}
}

func ToRecipeMinified(recipe entities.Recipe) domain.RecipeMinifiedResponse {
	return domain.RecipeMinifiedResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}
}

func canModify(recipe *entities.Recipe, userID, role string) bool {
	return role == domain.RoleAdmin || recipe.AuthorID.String() == userID
}

const maxSanitizePasses = 8

// sanitize strips markup and stores the result as plain text. Decoding
// entities can surface new tags, so the policy is reapplied until the value
// is stable. If it never settles the escaped form is kept.
func sanitize(value string) string {
	clean := strings.TrimSpace(value)
	for i := 0; i < maxSanitizePasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(clean)))
		if next == clean {
			return clean
		}
		clean = next
	}
	return textPolicy.Sanitize(clean)
}

func sanitizeRequired(value string, emptyErr error) (string, error) {
	clean := sanitize(value)
	if clean == "" {
		return "", emptyErr
	}
	return clean, nil
}
