package routes

import (
	"taskhub-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRelationshipRoutes registers the routes acting on the caller's relationships
func RegisterRelationshipRoutes(rg *gin.RouterGroup, h handlers.RelationshipHandlerInterface, authMiddleware gin.HandlerFunc) {
	rels := rg.Group("/relationships")
	rels.Use(authMiddleware)
	{
		rels.GET("", h.GetRelationships)
		rels.GET("/:userId", h.GetRelationship)
		rels.DELETE("/:userId", h.RemoveRelationship)
		rels.POST("/:userId/request", h.SendRequest)
		rels.POST("/:userId/accept", h.AcceptRequest)
		rels.POST("/:userId/block", h.Block)
		rels.POST("/:userId/unblock", h.Unblock)
	}
}
