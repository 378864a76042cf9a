package relation

import (
	"context"

	"foodgram/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RelationRepository interface {
		// Insert reports false when the (user, target) marker already exists.
		Insert(ctx context.Context, kind Kind, userID, targetID uuid.UUID) (bool, error)
		// Delete reports false when there was no marker to delete.
		Delete(ctx context.Context, kind Kind, userID, targetID uuid.UUID) (bool, error)
		MarkedTargets(ctx context.Context, kind Kind, userID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	}

	relationRepository struct {
		db *gorm.DB
	}
)

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) Insert(ctx context.Context, kind Kind, userID, targetID uuid.UUID) (bool, error) {
	marker, err := kind.newMarker(userID, targetID)
	if err != nil {
		return false, err
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(marker)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *relationRepository) Delete(ctx context.Context, kind Kind, userID, targetID uuid.UUID) (bool, error) {
	model, err := kind.model()
	if err != nil {
		return false, err
	}

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND "+kind.targetColumn()+" = ?", userID, targetID).
		Delete(model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *relationRepository) MarkedTargets(ctx context.Context, kind Kind, userID uuid.UUID, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	marked := make(map[uuid.UUID]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return marked, nil
	}

	model, err := kind.model()
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("user_id = ? AND "+kind.targetColumn()+" IN ?", userID, targetIDs).
		Pluck(kind.targetColumn(), &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		marked[id] = true
	}
	return marked, nil
}

func (k Kind) model() (any, error) {
	switch k {
	case KindFavorite:
		return &entities.Favorite{}, nil
	case KindShoppingCart:
		return &entities.CartEntry{}, nil
	case KindSubscription:
		return &entities.Subscription{}, nil
	}
	return nil, errUnknownKind(k)
}

func (k Kind) newMarker(userID, targetID uuid.UUID) (any, error) {
	switch k {
	case KindFavorite:
		return &entities.Favorite{UserID: userID, RecipeID: targetID}, nil
	case KindShoppingCart:
		return &entities.CartEntry{UserID: userID, RecipeID: targetID}, nil
	case KindSubscription:
		return &entities.Subscription{UserID: userID, AuthorID: targetID}, nil
	}
	return nil, errUnknownKind(k)
}

func (k Kind) targetColumn() string {
	if k == KindSubscription {
		return "author_id"
	}
	return "recipe_id"
}
