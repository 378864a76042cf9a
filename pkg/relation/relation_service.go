// Package relation implements the favorite, shopping cart and subscription
// markers. A marker is either present or absent for a (user, target) pair;
// adding a present marker or removing an absent one is an error and never a
// silent no-op.
package relation

import (
	"context"
	"fmt"

	"foodgram/domain"
	"foodgram/internal/metrics"

	"github.com/google/uuid"
)

type Kind string

const (
	KindFavorite     Kind = "favorite"
	KindShoppingCart Kind = "shopping_cart"
	KindSubscription Kind = "subscription"
)

func (k Kind) Valid() bool {
	switch k {
	case KindFavorite, KindShoppingCart, KindSubscription:
		return true
	}
	return false
}

func (k Kind) existsErr() error {
	switch k {
	case KindFavorite:
		return domain.ErrAlreadyInFavorites
	case KindShoppingCart:
		return domain.ErrAlreadyInShoppingCart
	case KindSubscription:
		return domain.ErrAlreadySubscribed
	}
	return domain.ErrMarkerExists
}

func (k Kind) notFoundErr() error {
	switch k {
	case KindFavorite:
		return domain.ErrNotInFavorites
	case KindShoppingCart:
		return domain.ErrNotInShoppingCart
	case KindSubscription:
		return domain.ErrNotSubscribed
	}
	return domain.ErrMarkerNotFound
}

func errUnknownKind(k Kind) error {
	return fmt.Errorf("%w: %q", domain.ErrUnknownRelation, string(k))
}

type (
	RelationService interface {
		AddMarker(ctx context.Context, kind Kind, userID, targetID string) error
		RemoveMarker(ctx context.Context, kind Kind, userID, targetID string) error
		// MarkedTargets reports which of targetIDs carry a marker of kind for
		// userID. An empty userID is an anonymous viewer: nothing is marked.
		MarkedTargets(ctx context.Context, kind Kind, userID string, targetIDs []string) (map[string]bool, error)
	}

	relationService struct {
		relationRepository RelationRepository
		metrics            metrics.Recorder
	}
)

func NewRelationService(relationRepository RelationRepository, recorder metrics.Recorder) RelationService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &relationService{
		relationRepository: relationRepository,
		metrics:            recorder,
	}
}

func (s *relationService) AddMarker(ctx context.Context, kind Kind, userID, targetID string) error {
	userUUID, targetUUID, err := parsePair(kind, userID, targetID)
	if err != nil {
		s.metrics.RecordRelationToggle(string(kind), metrics.OperationAdd, metrics.ResultRejected)
		return err
	}

	if kind == KindSubscription && userUUID == targetUUID {
		s.metrics.RecordRelationToggle(string(kind), metrics.OperationAdd, metrics.ResultRejected)
		return domain.ErrSelfSubscription
	}

	created, err := s.relationRepository.Insert(ctx, kind, userUUID, targetUUID)
	if err != nil {
		s.metrics.RecordRelationToggle(string(kind), metrics.OperationAdd, metrics.ResultError)
		return err
	}
	if !created {
		s.metrics.RecordRelationToggle(string(kind), metrics.OperationAdd, metrics.ResultConflict)
		return kind.existsErr()
	}

	s.metrics.RecordRelationToggle(string(kind), metrics.OperationAdd, metrics.ResultOK)
	return nil
}

func (s *relationService) RemoveMarker(ctx context.Context, kind Kind, userID, targetID string) error {
	userUUID, targetUUID, err := parsePair(kind, userID, targetID)
	if err != nil {
		s.metrics.RecordRelationToggle(string(kind), metrics.OperationRemove, metrics.ResultRejected)
		return err
	}

	deleted, err := s.relationRepository.Delete(ctx, kind, userUUID, targetUUID)
	if err != nil {
		s.metrics.RecordRelationToggle(string(kind), metrics.OperationRemove, metrics.ResultError)
		return err
	}
	if !deleted {
		s.metrics.RecordRelationToggle(string(kind), metrics.OperationRemove, metrics.ResultNotFound)
		return kind.notFoundErr()
	}

	s.metrics.RecordRelationToggle(string(kind), metrics.OperationRemove, metrics.ResultOK)
	return nil
}

func (s *relationService) MarkedTargets(ctx context.Context, kind Kind, userID string, targetIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(targetIDs))
	if userID == "" || len(targetIDs) == 0 {
		return result, nil
	}
	if !kind.Valid() {
		return nil, errUnknownKind(kind)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	ids := make([]uuid.UUID, 0, len(targetIDs))
	for _, id := range targetIDs {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		ids = append(ids, parsed)
	}

	marked, err := s.relationRepository.MarkedTargets(ctx, kind, userUUID, ids)
	if err != nil {
		return nil, err
	}
	for id := range marked {
		result[id.String()] = true
	}
	return result, nil
}

func parsePair(kind Kind, userID, targetID string) (uuid.UUID, uuid.UUID, error) {
	if !kind.Valid() {
		return uuid.Nil, uuid.Nil, errUnknownKind(kind)
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}
	targetUUID, err := uuid.Parse(targetID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}
	return userUUID, targetUUID, nil
}
