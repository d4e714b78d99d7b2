package handlers

import (
	"net/http"

	"taskhub-api/internal/services"
	"taskhub-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TaskListHandler serves the caller's task lists.
type TaskListHandler struct {
	svc    services.TaskListService
	logger *zap.Logger
}

// NewTaskListHandler creates a new TaskListHandler with the given service
func NewTaskListHandler(svc services.TaskListService, logger *zap.Logger) *TaskListHandler {
	return &TaskListHandler{svc: svc, logger: logger}
}

// GetTaskLists godoc
// @Summary      List your task lists
// @Tags         task-lists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.TaskListDTO
// @Router       /task-lists [get]
func (h *TaskListHandler) GetTaskLists(c *gin.Context) {
	owner, ok := actorID(c)
	if !ok {
		return
	}

	lists, err := h.svc.List(c.Request.Context(), owner)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// GetTaskListByID godoc
// @Summary      Get a task list
// @Tags         task-lists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task list ID"
// @Success      200  {object}  dto.TaskListDTO
// @Failure      403  {object}  dto.CustomErrorDTO
// @Failure      404  {object}  dto.CustomErrorDTO
// @Router       /task-lists/{id} [get]
func (h *TaskListHandler) GetTaskListByID(c *gin.Context) {
	owner, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.svc.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateTaskList godoc
// @Summary      Create a task list
// @Tags         task-lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        list body      dto.TaskListCreateDTO true "Task list to create"
// @Success      201  {object}  dto.TaskListDTO
// @Failure      400  {object}  dto.CustomErrorDTO
// @Router       /task-lists [post]
func (h *TaskListHandler) CreateTaskList(c *gin.Context) {
	owner, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.TaskListCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c, err)
		return
	}

	list, err := h.svc.Create(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// UpdateTaskList godoc
// @Summary      Update a task list
// @Description  Only the fields present in the body change.
// @Tags         task-lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int                   true "Task list ID"
// @Param        list body      dto.TaskListUpdateDTO true "Fields to change"
// @Success      200  {object}  dto.TaskListDTO
// @Failure      400  {object}  dto.CustomErrorDTO
// @Failure      403  {object}  dto.CustomErrorDTO
// @Failure      404  {object}  dto.CustomErrorDTO
// @Router       /task-lists/{id} [put]
func (h *TaskListHandler) UpdateTaskList(c *gin.Context) {
	owner, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.TaskListUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadJSON(c, err)
		return
	}

	list, err := h.svc.Update(c.Request.Context(), owner, id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteTaskList godoc
// @Summary      Delete a task list
// @Tags         task-lists
// @Security     BearerAuth
// @Param        id   path      int  true  "Task list ID"
// @Success      204
// @Failure      403  {object}  dto.CustomErrorDTO
// @Failure      404  {object}  dto.CustomErrorDTO
// @Router       /task-lists/{id} [delete]
func (h *TaskListHandler) DeleteTaskList(c *gin.Context) {
	owner, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), owner, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
