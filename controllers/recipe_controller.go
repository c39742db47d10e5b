package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"recipe-app/constants"
	"recipe-app/dto"
	"recipe-app/repositories"
	"recipe-app/services"

	"github.com/gin-gonic/gin"
)

type IRecipeController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	UploadImage(ctx *gin.Context)
}

type RecipeController struct {
	service services.IRecipeService
}

func NewRecipeController(service services.IRecipeService) IRecipeController {
	return &RecipeController{service: service}
}

// parseIDs "1,2,3" 形式のクエリをIDのスライスに変換する
func parseIDs(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func (c *RecipeController) FindAll(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	tagIDs, err := parseIDs(ctx.Query("tags"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}
	ingredientIDs, err := parseIDs(ctx.Query("ingredients"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	recipes, err := c.service.FindAll(ctx.Request.Context(), user.ID, repositories.RecipeFilter{
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	})
	if err != nil {
		respondError(ctx, "List recipes", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRecipeResponses(recipes))
}

func (c *RecipeController) FindById(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	recipeID, ok := paramID(ctx)
	if !ok {
		return
	}

	recipe, err := c.service.FindById(ctx.Request.Context(), recipeID, user.ID)
	if err != nil {
		respondError(ctx, "Find recipe", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRecipeDetailResponse(recipe))
}

func (c *RecipeController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.CreateRecipeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newRecipe, err := c.service.Create(ctx.Request.Context(), input, user.ID)
	if err != nil {
		respondError(ctx, "Create recipe", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewRecipeDetailResponse(newRecipe))
}

func (c *RecipeController) Update(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	recipeID, ok := paramID(ctx)
	if !ok {
		return
	}

	var input dto.UpdateRecipeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	updatedRecipe, err := c.service.Update(ctx.Request.Context(), recipeID, user.ID, input)
	if err != nil {
		respondError(ctx, "Update recipe", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRecipeDetailResponse(updatedRecipe))
}

func (c *RecipeController) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	recipeID, ok := paramID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), recipeID, user.ID); err != nil {
		respondError(ctx, "Delete recipe", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *RecipeController) UploadImage(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	recipeID, ok := paramID(ctx)
	if !ok {
		return
	}

	// multipart のヘッダー分として1MBの余裕を持たせる
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, constants.RecipeImageMaxBytes+1<<20)
	fileHeader, err := ctx.FormFile(constants.RecipeImageForm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}
	defer file.Close()

	recipe, err := c.service.UploadImage(ctx.Request.Context(), recipeID, user.ID, fileHeader.Filename, file)
	if err != nil {
		respondError(ctx, "Upload recipe image", err)
		return
	}

	image := ""
	if url := dto.ImageURL(recipe.Image); url != nil {
		image = *url
	}
	ctx.JSON(http.StatusOK, dto.RecipeImageResponse{ID: recipe.ID, Image: image})
}
