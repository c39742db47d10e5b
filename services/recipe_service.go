package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"recipe-app/constants"
	"recipe-app/dto"
	"recipe-app/models"
	"recipe-app/repositories"

	"github.com/shopspring/decimal"
)

// FileStore persists uploaded files under a storage-relative path.
type FileStore interface {
	Save(ctx context.Context, path string, src io.Reader) error
	Delete(ctx context.Context, path string) error
}

type IRecipeService interface {
	FindAll(ctx context.Context, userID uint, filter repositories.RecipeFilter) ([]models.Recipe, error)
	FindById(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error)
	Create(ctx context.Context, input dto.CreateRecipeInput, userID uint) (*models.Recipe, error)
	Update(ctx context.Context, recipeID uint, userID uint, input dto.UpdateRecipeInput) (*models.Recipe, error)
	Delete(ctx context.Context, recipeID uint, userID uint) error
	UploadImage(ctx context.Context, recipeID uint, userID uint, filename string, src io.Reader) (*models.Recipe, error)
}

type RecipeService struct {
	repository           repositories.IRecipeRepository
	tagRepository        repositories.ITagRepository
	ingredientRepository repositories.IIngredientRepository
	files                FileStore
}

func NewRecipeService(
	repository repositories.IRecipeRepository,
	tagRepository repositories.ITagRepository,
	ingredientRepository repositories.IIngredientRepository,
	files FileStore,
) IRecipeService {
	return &RecipeService{
		repository:           repository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		files:                files,
	}
}

// decimal(5,2) に収まる価格のみ受け付ける
var maxPrice = decimal.NewFromInt(1000)

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() || price.GreaterThanOrEqual(maxPrice) || !price.Equal(price.Round(2)) {
		return fmt.Errorf("%w: price must be between 0 and 999.99 with at most 2 decimal places", models.ErrInvalidInput)
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *RecipeService) ownedTags(ctx context.Context, ids []uint, userID uint) ([]models.Tag, error) {
	ids = uniqueIDs(ids)
	tags, err := s.tagRepository.FindByIDs(ctx, ids, userID)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, fmt.Errorf("%w: unknown tag", models.ErrInvalidInput)
	}
	return tags, nil
}

func (s *RecipeService) ownedIngredients(ctx context.Context, ids []uint, userID uint) ([]models.Ingredient, error) {
	ids = uniqueIDs(ids)
	ingredients, err := s.ingredientRepository.FindByIDs(ctx, ids, userID)
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(ids) {
		return nil, fmt.Errorf("%w: unknown ingredient", models.ErrInvalidInput)
	}
	return ingredients, nil
}

func (s *RecipeService) FindAll(ctx context.Context, userID uint, filter repositories.RecipeFilter) ([]models.Recipe, error) {
	return s.repository.FindAll(ctx, userID, filter)
}

func (s *RecipeService) FindById(ctx context.Context, recipeID uint, userID uint) (*models.Recipe, error) {
	return s.repository.FindById(ctx, recipeID, userID)
}

func (s *RecipeService) Create(ctx context.Context, input dto.CreateRecipeInput, userID uint) (*models.Recipe, error) {
	if input.Price == nil {
		return nil, models.ErrInvalidInput
	}
	if err := validatePrice(*input.Price); err != nil {
		return nil, err
	}

	tags, err := s.ownedTags(ctx, input.Tags, userID)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.ownedIngredients(ctx, input.Ingredients, userID)
	if err != nil {
		return nil, err
	}

	newRecipe := models.Recipe{
		Title:       input.Title,
		TimeMinutes: input.TimeMinutes,
		Price:       *input.Price,
		Link:        input.Link,
		UserID:      userID,
		Tags:        tags,
		Ingredients: ingredients,
	}
	return s.repository.Create(ctx, newRecipe)
}

func (s *RecipeService) Update(ctx context.Context, recipeID uint, userID uint, input dto.UpdateRecipeInput) (*models.Recipe, error) {
	targetRecipe, err := s.FindById(ctx, recipeID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		targetRecipe.Title = *input.Title
	}
	if input.TimeMinutes != nil {
		targetRecipe.TimeMinutes = *input.TimeMinutes
	}
	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return nil, err
		}
		targetRecipe.Price = *input.Price
	}
	if input.Link != nil {
		targetRecipe.Link = *input.Link
	}
	if input.Tags != nil {
		tags, err := s.ownedTags(ctx, *input.Tags, userID)
		if err != nil {
			return nil, err
		}
		targetRecipe.Tags = tags
	}
	if input.Ingredients != nil {
		ingredients, err := s.ownedIngredients(ctx, *input.Ingredients, userID)
		if err != nil {
			return nil, err
		}
		targetRecipe.Ingredients = ingredients
	}

	return s.repository.Update(ctx, targetRecipe, input.Tags != nil, input.Ingredients != nil)
}

func (s *RecipeService) Delete(ctx context.Context, recipeID uint, userID uint) error {
	targetRecipe, err := s.FindById(ctx, recipeID, userID)
	if err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, recipeID, userID); err != nil {
		return err
	}

	if targetRecipe.Image != "" {
		if err := s.files.Delete(ctx, targetRecipe.Image); err != nil {
			log.Printf("Failed to remove image %s of deleted recipe: %v", targetRecipe.Image, err)
		}
	}
	return nil
}

// JPEGとPNGのみ受け付ける。拡張子は中身と一致している必要がある
var imageExtensions = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
}

// readImage reads at most RecipeImageMaxBytes and checks that the bytes are
// an allowed image whose filename extension matches the sniffed type.
func readImage(filename string, src io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(src, constants.RecipeImageMaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > constants.RecipeImageMaxBytes {
		return nil, fmt.Errorf("%w: image exceeds 10MB limit", models.ErrInvalidInput)
	}

	contentType := http.DetectContentType(data)
	exts, ok := imageExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: only JPEG and PNG images are accepted", models.ErrInvalidInput)
	}
	if !slices.Contains(exts, strings.ToLower(filepath.Ext(filename))) {
		return nil, fmt.Errorf("%w: file extension does not match %s", models.ErrInvalidInput, contentType)
	}
	return data, nil
}

func (s *RecipeService) UploadImage(ctx context.Context, recipeID uint, userID uint, filename string, src io.Reader) (*models.Recipe, error) {
	targetRecipe, err := s.FindById(ctx, recipeID, userID)
	if err != nil {
		return nil, err
	}

	data, err := readImage(filename, src)
	if err != nil {
		return nil, err
	}

	path := RecipeImageFilePath(targetRecipe, filename)
	if err := s.files.Save(ctx, path, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}

	if err := s.repository.UpdateImage(ctx, recipeID, userID, path); err != nil {
		if delErr := s.files.Delete(ctx, path); delErr != nil {
			log.Printf("Failed to remove orphaned image %s: %v", path, delErr)
		}
		return nil, err
	}

	if targetRecipe.Image != "" {
		if err := s.files.Delete(ctx, targetRecipe.Image); err != nil {
			log.Printf("Failed to remove previous image %s: %v", targetRecipe.Image, err)
		}
	}

	targetRecipe.Image = path
	return targetRecipe, nil
}
