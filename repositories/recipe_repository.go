package repositories

import (
	"context"

	"recipe-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeFilter narrows a recipe listing to recipes carrying any of the given tags/ingredients.
type RecipeFilter struct {
	TagIDs        []uint
	IngredientIDs []uint
}

type IRecipeRepository interface {
	FindAll(ctx context.Context, userID uint, filter RecipeFilter) ([]models.Recipe, error)
	FindById(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error)
	Create(ctx context.Context, newRecipe models.Recipe) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe, replaceTags bool, replaceIngredients bool) (*models.Recipe, error)
	UpdateImage(ctx context.Context, recipeID uint, userID uint, image string) error
	Delete(ctx context.Context, recipeID uint, userID uint) error
}

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) IRecipeRepository {
	return &RecipeRepository{db: db}
}

func orderedByName(db *gorm.DB) *gorm.DB {
	return db.Order(nameOrder)
}

func (r *RecipeRepository) FindAll(ctx context.Context, userID uint, filter RecipeFilter) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(filter.TagIDs) > 0 {
		query = query.Where("id IN (?)", r.db.Table("recipe_tags").Select("recipe_id").Where("tag_id IN ?", filter.TagIDs))
	}
	if len(filter.IngredientIDs) > 0 {
		query = query.Where("id IN (?)", r.db.Table("recipe_ingredients").Select("recipe_id").Where("ingredient_id IN ?", filter.IngredientIDs))
	}

	result := query.
		Preload("Tags", orderedByName).
		Preload("Ingredients", orderedByName).
		Order("id DESC").
		Find(&recipes)
	if result.Error != nil {
		return nil, wrap("find recipes", result.Error)
	}
	return recipes, nil
}

func (r *RecipeRepository) FindById(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	result := r.db.WithContext(ctx).
		Preload("Tags", orderedByName).
		Preload("Ingredients", orderedByName).
		First(&recipe, "id = ? AND user_id = ?", recipeID, userID)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}
	return &recipe, nil
}

func (r *RecipeRepository) Create(ctx context.Context, newRecipe models.Recipe) (*models.Recipe, error) {
	result := r.db.WithContext(ctx).Create(&newRecipe)
	if result.Error != nil {
		return nil, wrap("create recipe", result.Error)
	}
	return r.FindById(ctx, newRecipe.ID, newRecipe.UserID)
}

func (r *RecipeRepository) Update(ctx context.Context, recipe *models.Recipe, replaceTags bool, replaceIngredients bool) (*models.Recipe, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}
		if replaceTags {
			if err := replaceAssociation(tx, recipe, "Tags", recipe.Tags); err != nil {
				return err
			}
		}
		if replaceIngredients {
			if err := replaceAssociation(tx, recipe, "Ingredients", recipe.Ingredients); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrap("update recipe", err)
	}
	return r.FindById(ctx, recipe.ID, recipe.UserID)
}

func replaceAssociation[T any](tx *gorm.DB, recipe *models.Recipe, name string, values []T) error {
	association := tx.Model(recipe).Association(name)
	if len(values) == 0 {
		return association.Clear()
	}
	return association.Replace(values)
}

func (r *RecipeRepository) UpdateImage(ctx context.Context, recipeID uint, userID uint, image string) error {
	result := r.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ? AND user_id = ?", recipeID, userID).
		Update("image", image)
	if result.Error != nil {
		return wrap("update recipe image", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, recipeID uint, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", recipeID, userID).Delete(&models.Recipe{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrNotFound
		}
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipeID).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM recipe_ingredients WHERE recipe_id = ?", recipeID).Error
	})
}
