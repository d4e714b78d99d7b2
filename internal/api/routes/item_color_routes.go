package routes

import (
	"taskhub-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterItemColorRoutes registers the item color routes. Reads are public, writes need a token.
func RegisterItemColorRoutes(rg *gin.RouterGroup, h handlers.ItemColorHandlerInterface, authMiddleware gin.HandlerFunc) {
	colors := rg.Group("/item-colors")
	{
		colors.GET("", h.GetItemColors)
		colors.GET("/:id", h.GetItemColorByID)
		colors.POST("", authMiddleware, h.CreateItemColor)
		colors.PUT("/:id", authMiddleware, h.UpdateItemColor)
		colors.DELETE("/:id", authMiddleware, h.DeleteItemColor)
	}
}
