package dto

import "recipe-app/models"

type CreateTagInput struct {
	Name string `json:"name" binding:"required,max=255"`
}

type CreateIngredientInput struct {
	Name string `json:"name" binding:"required,max=255"`
}

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type IngredientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewTagResponse(tag *models.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name}
}

func NewTagResponses(tags []models.Tag) []TagResponse {
	res := make([]TagResponse, 0, len(tags))
	for i := range tags {
		res = append(res, NewTagResponse(&tags[i]))
	}
	return res
}

func NewIngredientResponse(ingredient *models.Ingredient) IngredientResponse {
	return IngredientResponse{ID: ingredient.ID, Name: ingredient.Name}
}

func NewIngredientResponses(ingredients []models.Ingredient) []IngredientResponse {
	res := make([]IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		res = append(res, NewIngredientResponse(&ingredients[i]))
	}
	return res
}
