package controllers

import (
	"net/http"

	"recipe-app/dto"
	"recipe-app/services"

	"github.com/gin-gonic/gin"
)

type IIngredientController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type IngredientController struct {
	service services.IIngredientService
}

func NewIngredientController(service services.IIngredientService) IIngredientController {
	return &IngredientController{service: service}
}

func (c *IngredientController) FindAll(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	ingredients, err := c.service.FindAll(ctx.Request.Context(), user.ID, assignedOnly(ctx))
	if err != nil {
		respondError(ctx, "List ingredients", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewIngredientResponses(ingredients))
}

func (c *IngredientController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.CreateIngredientInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := c.service.Create(ctx.Request.Context(), input, user.ID)
	if err != nil {
		respondError(ctx, "Create ingredient", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewIngredientResponse(ingredient))
}

func (c *IngredientController) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	ingredientID, ok := paramID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), ingredientID, user.ID); err != nil {
		respondError(ctx, "Delete ingredient", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
