package routes

import (
	"taskhub-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterTaskListRoutes registers the task list routes
func RegisterTaskListRoutes(rg *gin.RouterGroup, h handlers.TaskListHandlerInterface, authMiddleware gin.HandlerFunc) {
	lists := rg.Group("/task-lists")
	lists.Use(authMiddleware)
	{
		lists.GET("", h.GetTaskLists)
		lists.POST("", h.CreateTaskList)
		lists.GET("/:id", h.GetTaskListByID)
		lists.PUT("/:id", h.UpdateTaskList)
		lists.DELETE("/:id", h.DeleteTaskList)
	}
}
