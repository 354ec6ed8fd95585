package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akademia/akademia/internal/app/controllers"
	"github.com/akademia/akademia/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	postController *controllers.PostController,
	projectController *controllers.ProjectController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/cadastrar", authController.Register)
	api.POST("/login", authController.Login)
	api.GET("/verificar", authController.VerifyEmail)

	api.GET("/publicacoes", postController.GetFeed)
	api.GET("/usuarios/:id", userController.GetProfile)
	api.GET("/usuarios/:id/projetos", projectController.ListUserProjects)
	api.GET("/projetos/:id", projectController.GetProject)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/publicacoes", postController.CreatePost)

		authenticated.PUT("/usuarios/:id", userController.UpdateProfile)
		authenticated.POST("/usuarios/:id/foto", userController.UploadPhoto)

		authenticated.POST("/projetos", projectController.CreateProject)
		authenticated.PUT("/projetos/:id", projectController.UpdateProject)
		authenticated.DELETE("/projetos/:id", projectController.DeleteProject)
	}
}
