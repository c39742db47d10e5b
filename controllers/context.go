package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"recipe-app/constants"
	"recipe-app/models"

	"github.com/gin-gonic/gin"
)

// currentUser AuthMiddlewareが設定したユーザーを取得する
func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get(constants.ContextUserKey)
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return nil, false
	}
	userModel, ok := user.(*models.User)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return nil, false
	}
	return userModel, true
}

func paramID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto HTTP status codes.
func respondError(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrNotFound})
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrEmailRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrEmailAlreadyExists):
		ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrEmailAlreadyExists})
	case errors.Is(err, models.ErrInvalidCredentials):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidCredentials})
	default:
		log.Printf("%s error: %v", op, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
	}
}
