package controllers

import (
	"net/http"

	"recipe-app/dto"
	"recipe-app/services"

	"github.com/gin-gonic/gin"
)

type ITagController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type TagController struct {
	service services.ITagService
}

func NewTagController(service services.ITagService) ITagController {
	return &TagController{service: service}
}

// assignedOnly ?assigned_only=1 でレシピに割り当て済みのものだけに絞る
func assignedOnly(ctx *gin.Context) bool {
	v := ctx.Query("assigned_only")
	return v == "1" || v == "true"
}

func (c *TagController) FindAll(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	tags, err := c.service.FindAll(ctx.Request.Context(), user.ID, assignedOnly(ctx))
	if err != nil {
		respondError(ctx, "List tags", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTagResponses(tags))
}

func (c *TagController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.CreateTagInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := c.service.Create(ctx.Request.Context(), input, user.ID)
	if err != nil {
		respondError(ctx, "Create tag", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewTagResponse(tag))
}

func (c *TagController) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	tagID, ok := paramID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), tagID, user.ID); err != nil {
		respondError(ctx, "Delete tag", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
