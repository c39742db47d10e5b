package controllers

import (
	"errors"
	"log"
	"net/http"

	"recipe-app/constants"
	"recipe-app/dto"
	"recipe-app/middlewares"
	"recipe-app/models"
	"recipe-app/services"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	Create(ctx *gin.Context)
	Token(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
	UpdateMe(ctx *gin.Context)
	FindAll(ctx *gin.Context)
}

type UserController struct {
	service     services.IUserService
	authService services.IAuthService
}

func NewUserController(service services.IUserService, authService services.IAuthService) IUserController {
	return &UserController{service: service, authService: authService}
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.CreateUser(ctx.Request.Context(), input.Email, input.Password, services.WithName(input.Name))
	if err != nil {
		respondError(ctx, "Create user", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

func (c *UserController) Token(ctx *gin.Context) {
	var input dto.TokenInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(ctx, "Token", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: *token})
}

func (c *UserController) Logout(ctx *gin.Context) {
	tokenString, ok := middlewares.BearerToken(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), tokenString); err != nil {
		if errors.Is(err, models.ErrInvalidToken) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidToken})
			return
		}
		log.Printf("Logout error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (c *UserController) Me(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (c *UserController) UpdateMe(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var input dto.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := c.service.UpdateUser(ctx.Request.Context(), user, input)
	if err != nil {
		respondError(ctx, "Update user", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "List users", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAdminUserResponses(users))
}
