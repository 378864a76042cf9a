package tag

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
	TagService interface {
		CreateTag(ctx context.Context, req domain.TagRequest) (domain.TagResponse, error)
		UpdateTag(ctx context.Context, id string, req domain.TagRequest) (domain.TagResponse, error)
		DeleteTag(ctx context.Context, id string) error
		GetTag(ctx context.Context, id string) (domain.TagResponse, error)
		GetTags(ctx context.Context) ([]domain.TagResponse, error)
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func ToTagResponse(tag entities.Tag) domain.TagResponse {
	return domain.TagResponse{
		ID:    tag.ID.String(),
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}

func (s *tagService) CreateTag(ctx context.Context, req domain.TagRequest) (domain.TagResponse, error) {
	tag := &entities.Tag{
		Name:  strings.TrimSpace(req.Name),
		Color: strings.ToUpper(req.Color),
		Slug:  req.Slug,
	}

	created, err := s.tagRepository.CreateTag(ctx, tag)
	if err != nil {
		return domain.TagResponse{}, err
	}
	if !created {
		return domain.TagResponse{}, domain.ErrTagExists
	}
	return ToTagResponse(*tag), nil
}

func (s *tagService) UpdateTag(ctx context.Context, id string, req domain.TagRequest) (domain.TagResponse, error) {
	tag, err := s.getTag(ctx, id)
	if err != nil {
		return domain.TagResponse{}, err
	}

	tag.Name = strings.TrimSpace(req.Name)
	tag.Color = strings.ToUpper(req.Color)
	tag.Slug = req.Slug

	taken, err := s.tagRepository.IsTagTaken(ctx, tag)
	if err != nil {
		return domain.TagResponse{}, err
	}
	if taken {
		return domain.TagResponse{}, domain.ErrTagExists
	}

	if err := s.tagRepository.UpdateTag(ctx, tag); err != nil {
		return domain.TagResponse{}, err
	}
	return ToTagResponse(*tag), nil
}

func (s *tagService) DeleteTag(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrTagNotFound
	}
	deleted, err := s.tagRepository.DeleteTag(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTagNotFound
	}
	return nil
}

func (s *tagService) GetTag(ctx context.Context, id string) (domain.TagResponse, error) {
	tag, err := s.getTag(ctx, id)
	if err != nil {
		return domain.TagResponse{}, err
	}
	return ToTagResponse(*tag), nil
}

func (s *tagService) GetTags(ctx context.Context) ([]domain.TagResponse, error) {
	tags, err := s.tagRepository.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, ToTagResponse(*tag))
	}
	return response, nil
}

func (s *tagService) getTag(ctx context.Context, id string) (*entities.Tag, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrTagNotFound
	}
	tag, err := s.tagRepository.GetTagByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}
