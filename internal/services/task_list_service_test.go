package services_test

import (
	"context"
	"testing"

	"taskhub-api/internal/models"
	"taskhub-api/internal/services"
	"taskhub-api/internal/storage"
	"taskhub-api/internal/transport/dto"
	"taskhub-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTaskListService(repo *MockTaskListRepository) services.TaskListService {
	return services.NewTaskListService(repo, validation.New(), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestTaskListService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaskListRepository)
	repo.On("Save", mock.Anything, &models.TaskList{OwnerID: 1, Name: "Groceries", Description: "weekly"}).
		Return(&models.TaskList{ID: 10, OwnerID: 1, Name: "Groceries", Description: "weekly"}, nil).Once()

	got, err := newTaskListService(repo).Create(ctx, 1, &dto.TaskListCreateDTO{Name: " Groceries ", Description: "weekly "})
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	repo.AssertExpectations(t)

	_, err = newTaskListService(new(MockTaskListRepository)).Create(ctx, 1, &dto.TaskListCreateDTO{Name: "bad<name>"})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestTaskListService_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	list := &models.TaskList{ID: 10, OwnerID: 1, Name: "Groceries"}

	repo := new(MockTaskListRepository)
	repo.On("GetByID", mock.Anything, int64(10)).Return(list, nil)
	repo.On("GetByID", mock.Anything, int64(11)).Return(nil, storage.ErrNotFound)
	svc := newTaskListService(repo)

	got, err := svc.GetByID(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Name)

	_, err = svc.GetByID(ctx, 2, 10)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = svc.GetByID(ctx, 1, 11)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.Update(ctx, 2, 10, &dto.TaskListUpdateDTO{Name: strPtr("Mine now")})
	assert.ErrorIs(t, err, services.ErrForbidden)

	assert.ErrorIs(t, svc.Delete(ctx, 2, 10), services.ErrForbidden)
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestTaskListService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaskListRepository)
	repo.On("GetByID", mock.Anything, int64(10)).
		Return(&models.TaskList{ID: 10, OwnerID: 1, Name: "Groceries", Description: "weekly"}, nil).Once()
	repo.On("Update", mock.Anything, &models.TaskList{ID: 10, OwnerID: 1, Name: "Shopping", Description: "weekly"}).
		Return(&models.TaskList{ID: 10, OwnerID: 1, Name: "Shopping", Description: "weekly"}, nil).Once()
	repo.On("ListByOwner", mock.Anything, int64(1)).Return([]models.TaskList{}, nil).Once()
	svc := newTaskListService(repo)

	got, err := svc.Update(ctx, 1, 10, &dto.TaskListUpdateDTO{Name: strPtr(" Shopping ")})
	require.NoError(t, err)
	assert.Equal(t, "Shopping", got.Name)
	assert.Equal(t, "weekly", got.Description, "absent fields are kept")

	lists, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, lists)
	repo.AssertExpectations(t)
}
