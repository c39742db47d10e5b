package services

import (
	"context"
	"strings"

	"recipe-app/dto"
	"recipe-app/models"
	"recipe-app/repositories"
)

type ITagService interface {
	FindAll(ctx context.Context, userID uint, assignedOnly bool) ([]models.Tag, error)
	Create(ctx context.Context, input dto.CreateTagInput, userID uint) (*models.Tag, error)
	Delete(ctx context.Context, tagID uint, userID uint) error
}

type TagService struct {
	repository repositories.ITagRepository
}

func NewTagService(repository repositories.ITagRepository) ITagService {
	return &TagService{repository: repository}
}

func (s *TagService) FindAll(ctx context.Context, userID uint, assignedOnly bool) ([]models.Tag, error) {
	return s.repository.FindAll(ctx, userID, assignedOnly)
}

func (s *TagService) Create(ctx context.Context, input dto.CreateTagInput, userID uint) (*models.Tag, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, models.ErrInvalidInput
	}
	return s.repository.Create(ctx, models.Tag{Name: name, UserID: userID})
}

func (s *TagService) Delete(ctx context.Context, tagID uint, userID uint) error {
	return s.repository.Delete(ctx, tagID, userID)
}
