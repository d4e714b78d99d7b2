package handlers

import (
	"context"
	"net/http"

	"taskhub-api/internal/services"
	"taskhub-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RelationshipHandler serves friend requests and blocks between the caller and another user.
type RelationshipHandler struct {
	svc    services.RelationshipService
	logger *zap.Logger
}

// NewRelationshipHandler creates a new RelationshipHandler with the given service
func NewRelationshipHandler(svc services.RelationshipService, logger *zap.Logger) *RelationshipHandler {
	return &RelationshipHandler{svc: svc, logger: logger}
}

// pair reads the acting user and the :userId target.
func pair(c *gin.Context) (actor, other int64, ok bool) {
	if actor, ok = actorID(c); !ok {
		return 0, 0, false
	}
	if other, ok = pathID(c, "userId"); !ok {
		return 0, 0, false
	}
	return actor, other, true
}

// GetRelationships godoc
// @Summary      List your relationships
// @Tags         relationships
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserRelationshipDTO
// @Router       /relationships [get]
func (h *RelationshipHandler) GetRelationships(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	rels, err := h.svc.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, rels)
}

// GetRelationship godoc
// @Summary      Get the relationship with a user
// @Tags         relationships
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "Other user ID"
// @Success      200  {object}  dto.UserRelationshipDTO
// @Failure      404  {object}  dto.CustomErrorDTO
// @Router       /relationships/{userId} [get]
func (h *RelationshipHandler) GetRelationship(c *gin.Context) {
	actor, other, ok := pair(c)
	if !ok {
		return
	}

	rel, err := h.svc.Get(c.Request.Context(), actor, other)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, rel)
}

type relationshipAction func(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error)

// mutate runs a relationship action and answers 204 when the pair no longer has one.
func (h *RelationshipHandler) mutate(c *gin.Context, action relationshipAction) {
	actor, other, ok := pair(c)
	if !ok {
		return
	}

	rel, err := action(c.Request.Context(), actor, other)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if rel == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, rel)
}

// SendRequest godoc
// @Summary      Send a friend request
// @Description  A request to a user who already asked you makes you friends.
// @Tags         relationships
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "Other user ID"
// @Success      200  {object}  dto.UserRelationshipDTO
// @Failure      403  {object}  dto.CustomErrorDTO
// @Failure      409  {object}  dto.CustomErrorDTO
// @Router       /relationships/{userId}/request [post]
func (h *RelationshipHandler) SendRequest(c *gin.Context) {
	h.mutate(c, h.svc.SendRequest)
}

// AcceptRequest godoc
// @Summary      Accept a friend request
// @Tags         relationships
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "Other user ID"
// @Success      200  {object}  dto.UserRelationshipDTO
// @Failure      422  {object}  dto.CustomErrorDTO
// @Router       /relationships/{userId}/accept [post]
func (h *RelationshipHandler) AcceptRequest(c *gin.Context) {
	h.mutate(c, h.svc.Accept)
}

// Block godoc
// @Summary      Block a user
// @Tags         relationships
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "Other user ID"
// @Success      200  {object}  dto.UserRelationshipDTO
// @Failure      409  {object}  dto.CustomErrorDTO
// @Router       /relationships/{userId}/block [post]
func (h *RelationshipHandler) Block(c *gin.Context) {
	h.mutate(c, h.svc.Block)
}

// Unblock godoc
// @Summary      Unblock a user
// @Tags         relationships
// @Produce      json
// @Security     BearerAuth
// @Param        userId path int true "Other user ID"
// @Success      200  {object}  dto.UserRelationshipDTO
// @Success      204
// @Failure      422  {object}  dto.CustomErrorDTO
// @Router       /relationships/{userId}/unblock [post]
func (h *RelationshipHandler) Unblock(c *gin.Context) {
	h.mutate(c, h.svc.Unblock)
}

// RemoveRelationship godoc
// @Summary      Cancel a request, decline one or unfriend
// @Tags         relationships
// @Security     BearerAuth
// @Param        userId path int true "Other user ID"
// @Success      204
// @Failure      404  {object}  dto.CustomErrorDTO
// @Failure      422  {object}  dto.CustomErrorDTO
// @Router       /relationships/{userId} [delete]
func (h *RelationshipHandler) RemoveRelationship(c *gin.Context) {
	actor, other, ok := pair(c)
	if !ok {
		return
	}

	if err := h.svc.Remove(c.Request.Context(), actor, other); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
