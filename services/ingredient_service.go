package services

import (
	"context"
	"strings"

	"recipe-app/dto"
	"recipe-app/models"
	"recipe-app/repositories"
)

type IIngredientService interface {
	FindAll(ctx context.Context, userID uint, assignedOnly bool) ([]models.Ingredient, error)
	Create(ctx context.Context, input dto.CreateIngredientInput, userID uint) (*models.Ingredient, error)
	Delete(ctx context.Context, ingredientID uint, userID uint) error
}

type IngredientService struct {
	repository repositories.IIngredientRepository
}

func NewIngredientService(repository repositories.IIngredientRepository) IIngredientService {
	return &IngredientService{repository: repository}
}

func (s *IngredientService) FindAll(ctx context.Context, userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	return s.repository.FindAll(ctx, userID, assignedOnly)
}

func (s *IngredientService) Create(ctx context.Context, input dto.CreateIngredientInput, userID uint) (*models.Ingredient, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, models.ErrInvalidInput
	}
	return s.repository.Create(ctx, models.Ingredient{Name: name, UserID: userID})
}

func (s *IngredientService) Delete(ctx context.Context, ingredientID uint, userID uint) error {
	return s.repository.Delete(ctx, ingredientID, userID)
}
