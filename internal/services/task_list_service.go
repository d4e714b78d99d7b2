package services

import (
	"context"
	"fmt"

	"taskhub-api/internal/models"
	"taskhub-api/internal/storage"
	"taskhub-api/internal/transport/dto"
	"taskhub-api/internal/transport/mapper"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type taskListService struct {
	repo     storage.TaskListRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewTaskListService creates a new instance of TaskListService.
func NewTaskListService(repo storage.TaskListRepository, v *validator.Validate, logger *zap.Logger) TaskListService {
	return &taskListService{repo: repo, validate: v, logger: logger.Named("task_lists")}
}

func (s *taskListService) Create(ctx context.Context, ownerID int64, req *dto.TaskListCreateDTO) (*dto.TaskListDTO, error) {
	if err := validate(s.validate, req); err != nil {
		return nil, err
	}
	req.Normalize()

	entity := mapper.TaskListFromCreateDTO(ownerID, req)
	saved, err := s.repo.Save(ctx, &entity)
	if err != nil {
		return nil, MapRepoError(s.logger, err, "create task list")
	}
	out := mapper.TaskListToDTO(saved)
	return &out, nil
}

// owned loads a list and checks that ownerID owns it.
func (s *taskListService) owned(ctx context.Context, ownerID, id int64) (*models.TaskList, error) {
	list, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(s.logger, err, fmt.Sprintf("get task list %d", id))
	}
	if list.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: task list %d belongs to another user", ErrForbidden, id)
	}
	return list, nil
}

func (s *taskListService) GetByID(ctx context.Context, ownerID, id int64) (*dto.TaskListDTO, error) {
	list, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	out := mapper.TaskListToDTO(list)
	return &out, nil
}

func (s *taskListService) List(ctx context.Context, ownerID int64) ([]dto.TaskListDTO, error) {
	lists, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, MapRepoError(s.logger, err, "list task lists")
	}
	return mapper.TaskListsToDTO(lists), nil
}

func (s *taskListService) Update(ctx context.Context, ownerID, id int64, req *dto.TaskListUpdateDTO) (*dto.TaskListDTO, error) {
	if err := validate(s.validate, req); err != nil {
		return nil, err
	}
	req.Normalize()

	list, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Description != nil {
		list.Description = *req.Description
	}

	updated, err := s.repo.Update(ctx, list)
	if err != nil {
		return nil, MapRepoError(s.logger, err, fmt.Sprintf("update task list %d", id))
	}
	out := mapper.TaskListToDTO(updated)
	return &out, nil
}

func (s *taskListService) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return MapRepoError(s.logger, err, fmt.Sprintf("delete task list %d", id))
	}
	return nil
}
