package dto

import (
	"path"

	"recipe-app/constants"
	"recipe-app/models"

	"github.com/shopspring/decimal"
)

type CreateRecipeInput struct {
	Title       string           `json:"title" binding:"required,max=255"`
	TimeMinutes int              `json:"time_minutes" binding:"required,min=1"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Link        string           `json:"link" binding:"omitempty,max=255"`
	Tags        []uint           `json:"tags"`
	Ingredients []uint           `json:"ingredients"`
}

// UpdateRecipeInput nil のフィールドは変更しない。Tags/Ingredients は指定時に置き換える
type UpdateRecipeInput struct {
	Title       *string          `json:"title" binding:"omitempty,min=1,max=255"`
	TimeMinutes *int             `json:"time_minutes" binding:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link" binding:"omitempty,max=255"`
	Tags        *[]uint          `json:"tags"`
	Ingredients *[]uint          `json:"ingredients"`
}

type RecipeResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	TimeMinutes int    `json:"time_minutes"`
	Price       string `json:"price"`
	Link        string `json:"link"`
	Tags        []uint `json:"tags"`
	Ingredients []uint `json:"ingredients"`
}

type RecipeDetailResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	TimeMinutes int                  `json:"time_minutes"`
	Price       string               `json:"price"`
	Link        string               `json:"link"`
	Image       *string              `json:"image"`
	Tags        []TagResponse        `json:"tags"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

type RecipeImageResponse struct {
	ID    uint   `json:"id"`
	Image string `json:"image"`
}

func NewRecipeResponses(recipes []models.Recipe) []RecipeResponse {
	res := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		tagIDs := make([]uint, 0, len(r.Tags))
		for _, t := range r.Tags {
			tagIDs = append(tagIDs, t.ID)
		}
		ingredientIDs := make([]uint, 0, len(r.Ingredients))
		for _, i := range r.Ingredients {
			ingredientIDs = append(ingredientIDs, i.ID)
		}
		res = append(res, RecipeResponse{
			ID:          r.ID,
			Title:       r.Title,
			TimeMinutes: r.TimeMinutes,
			Price:       r.Price.StringFixed(2),
			Link:        r.Link,
			Tags:        tagIDs,
			Ingredients: ingredientIDs,
		})
	}
	return res
}

func NewRecipeDetailResponse(recipe *models.Recipe) RecipeDetailResponse {
	return RecipeDetailResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price.StringFixed(2),
		Link:        recipe.Link,
		Image:       ImageURL(recipe.Image),
		Tags:        NewTagResponses(recipe.Tags),
		Ingredients: NewIngredientResponses(recipe.Ingredients),
	}
}

// ImageURL は保存済みの相対パスを公開URLに変換する。画像がない場合は nil
func ImageURL(image string) *string {
	if image == "" {
		return nil
	}
	url := path.Join(constants.MediaURLPrefix, image)
	return &url
}
