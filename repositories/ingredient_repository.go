package repositories

import (
	"context"

	"recipe-app/models"

	"gorm.io/gorm"
)

type IIngredientRepository interface {
	FindAll(ctx context.Context, userID uint, assignedOnly bool) ([]models.Ingredient, error)
	FindByIDs(ctx context.Context, ingredientIDs []uint, userID uint) ([]models.Ingredient, error)
	Create(ctx context.Context, newIngredient models.Ingredient) (*models.Ingredient, error)
	Delete(ctx context.Context, ingredientID uint, userID uint) error
}

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IIngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) FindAll(ctx context.Context, userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	var assigned *gorm.DB
	if assignedOnly {
		assigned = assignedSubquery(r.db, "recipe_ingredients", "ingredient_id")
	}
	ingredients, err := findOwned[models.Ingredient](ctx, r.db, userID, assigned)
	return ingredients, wrap("find ingredients", err)
}

func (r *IngredientRepository) FindByIDs(ctx context.Context, ingredientIDs []uint, userID uint) ([]models.Ingredient, error) {
	ingredients, err := findOwnedByIDs[models.Ingredient](ctx, r.db, ingredientIDs, userID)
	return ingredients, wrap("find ingredients by id", err)
}

func (r *IngredientRepository) Create(ctx context.Context, newIngredient models.Ingredient) (*models.Ingredient, error) {
	result := r.db.WithContext(ctx).Create(&newIngredient)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newIngredient, nil
}

func (r *IngredientRepository) Delete(ctx context.Context, ingredientID uint, userID uint) error {
	return deleteOwned[models.Ingredient](ctx, r.db, ingredientID, userID, "recipe_ingredients", "ingredient_id")
}
