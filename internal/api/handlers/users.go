package handlers

import (
	"net/http"

	"taskhub-api/internal/services"
	"taskhub-api/internal/transport/dto"
	"taskhub-api/internal/transport/mapper"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves accounts and authentication.
type UserHandler struct {
	svc    services.UserService
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler with the given service
func NewUserHandler(svc services.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterUserRequest true "Account to create"
// @Success      201  {object}  dto.UserDTO
// @Failure      400  {object}  dto.CustomErrorDTO
// @Failure      409  {object}  dto.CustomErrorDTO
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c, err)
		return
	}

	user, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.UserToDTO(user))
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Email and password"
// @Success      200  {object}  dto.AuthResponse
// @Failure      401  {object}  dto.CustomErrorDTO
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c, err)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Rotate a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body dto.RefreshRequest true "Refresh token"
// @Success      200  {object}  dto.AuthResponse
// @Failure      401  {object}  dto.CustomErrorDTO
// @Router       /auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c, err)
		return
	}

	resp, err := h.svc.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Revoke a refresh token
// @Tags         auth
// @Accept       json
// @Param        token body dto.RefreshRequest true "Refresh token"
// @Success      204
// @Router       /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c, err)
		return
	}

	if err := h.svc.Logout(c.Request.Context(), &req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserDTO
// @Router       /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapper.UsersToDTO(users))
}

// GetUserByID godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  dto.UserDTO
// @Failure      404  {object}  dto.CustomErrorDTO
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapper.UserToDTO(user))
}

// LookupUser godoc
// @Summary      Find a user by username or email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username query string false "Username"
// @Param        email    query string false "Email"
// @Success      200  {object}  dto.UserDTO
// @Failure      400  {object}  dto.CustomErrorDTO
// @Failure      404  {object}  dto.CustomErrorDTO
// @Router       /users/lookup [get]
func (h *UserHandler) LookupUser(c *gin.Context) {
	var req dto.UserLookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadJSON(c, err)
		return
	}

	user, found, err := h.svc.FindByUsernameOrEmail(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !found {
		abort(c, http.StatusNotFound, "User not found", nil)
		return
	}
	c.JSON(http.StatusOK, mapper.UserToDTO(user))
}

// DeleteUser godoc
// @Summary      Delete your own account
// @Tags         users
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      204
// @Failure      403  {object}  dto.CustomErrorDTO
// @Failure      404  {object}  dto.CustomErrorDTO
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
