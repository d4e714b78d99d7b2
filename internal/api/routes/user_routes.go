package routes

import (
	"taskhub-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers all routes related to users and authentication
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface, authMiddleware gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("", userHandler.GetUsers)
		users.GET("/lookup", userHandler.LookupUser)
		users.GET("/:id", userHandler.GetUserByID)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)
		auth.POST("/refresh", userHandler.Refresh)
		auth.POST("/logout", userHandler.Logout)
	}
}
