package routes

import (
	"net/http"

	"recipe-app/config"
	"recipe-app/constants"
	"recipe-app/controllers"
	"recipe-app/infra"
	"recipe-app/middlewares"
	"recipe-app/repositories"
	"recipe-app/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB, tokenDB *gorm.DB) *gin.Engine {
	hasher := services.NewBcryptHasher(cfg.BcryptCost)

	userRepository := repositories.NewUserRepository(db)
	tokenRepository := repositories.NewTokenRepository(tokenDB)
	tagRepository := repositories.NewTagRepository(db)
	ingredientRepository := repositories.NewIngredientRepository(db)
	recipeRepository := repositories.NewRecipeRepository(db)

	userService := services.NewUserService(userRepository, hasher)
	authService := services.NewAuthService(userRepository, tokenRepository, hasher, cfg.SecretKey, cfg.AccessTokenTTL)
	tagService := services.NewTagService(tagRepository)
	ingredientService := services.NewIngredientService(ingredientRepository)
	recipeService := services.NewRecipeService(recipeRepository, tagRepository, ingredientRepository, infra.NewLocalFileStore(cfg.MediaRoot))

	userController := controllers.NewUserController(userService, authService)
	tagController := controllers.NewTagController(tagService)
	ingredientController := controllers.NewIngredientController(ingredientService)
	recipeController := controllers.NewRecipeController(recipeService)

	authRequired := middlewares.AuthMiddleware(authService)

	r := gin.Default()
	r.Use(cors.Default())
	r.Static(constants.MediaURLPrefix, cfg.MediaRoot)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userRouter := r.Group("/user")
	userRouterWithAuth := r.Group("/user", authRequired)
	adminRouter := r.Group("/admin", authRequired, middlewares.RequireStaff())
	recipeRouter := r.Group("/recipe", authRequired)

	userRouter.POST("/create/", userController.Create)
	userRouter.POST("/token/", userController.Token)
	userRouter.POST("/logout/", userController.Logout)
	userRouterWithAuth.GET("/me/", userController.Me)
	userRouterWithAuth.PATCH("/me/", userController.UpdateMe)

	adminRouter.GET("/users/", userController.FindAll)

	recipeRouter.GET("/tags/", tagController.FindAll)
	recipeRouter.POST("/tags/", tagController.Create)
	recipeRouter.DELETE("/tags/:id/", tagController.Delete)

	recipeRouter.GET("/ingredients/", ingredientController.FindAll)
	recipeRouter.POST("/ingredients/", ingredientController.Create)
	recipeRouter.DELETE("/ingredients/:id/", ingredientController.Delete)

	recipeRouter.GET("/recipes/", recipeController.FindAll)
	recipeRouter.POST("/recipes/", recipeController.Create)
	recipeRouter.GET("/recipes/:id/", recipeController.FindById)
	recipeRouter.PATCH("/recipes/:id/", recipeController.Update)
	recipeRouter.DELETE("/recipes/:id/", recipeController.Delete)
	recipeRouter.POST("/recipes/:id/upload-image/", recipeController.UploadImage)

	return r
}
