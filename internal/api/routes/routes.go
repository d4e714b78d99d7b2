package routes

import (
	"net/http"

	"taskhub-api/internal/api/handlers"
	"taskhub-api/internal/api/middleware"
	"taskhub-api/internal/api/openapi"
	"taskhub-api/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	apiV1 := router.Group("/api/v1")
	if app.OpenAPI != nil && app.Config.OpenAPI.ValidateRequests {
		app.Logger.Info("validating requests against the OpenAPI document")
		apiV1.Use(middleware.OpenAPIValidator(app.OpenAPI))
	}

	userHandler := handlers.NewUserHandler(app.Users, app.Logger)
	itemColorHandler := handlers.NewItemColorHandler(app.ItemColors, app.Logger)
	relationshipHandler := handlers.NewRelationshipHandler(app.Relationships, app.Logger)
	taskListHandler := handlers.NewTaskListHandler(app.TaskLists, app.Logger)

	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret, app.Logger)

	RegisterUserRoutes(apiV1, userHandler, authMiddleware)
	RegisterItemColorRoutes(apiV1, itemColorHandler, authMiddleware)
	RegisterRelationshipRoutes(apiV1, relationshipHandler, authMiddleware)
	RegisterTaskListRoutes(apiV1, taskListHandler, authMiddleware)

	checks := make(map[string]handlers.Pinger, len(app.HealthChecks))
	for name, fn := range app.HealthChecks {
		checks[name] = handlers.PingFunc(fn)
	}
	router.GET("/health", handlers.NewHealthHandler(checks, app.Logger).HealthCheck)

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openapi.Document())
	})

	openapi.RegisterSwagger()
	app.Logger.Debug("configuring Swagger UI handler", zap.String("path", "/swagger/index.html"))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
