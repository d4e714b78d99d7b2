package services_test

import (
	"context"
	"time"

	"taskhub-api/internal/models"
	"taskhub-api/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the storage.UserRepository type
type MockUserRepository struct {
	mock.Mock
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

func userResult(args mock.Arguments) (*models.User, error) {
	var u *models.User
	if v := args.Get(0); v != nil {
		u = v.(*models.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	var users []models.User
	if v := args.Get(0); v != nil {
		users = v.([]models.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return userResult(m.Called(ctx, id))
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return userResult(m.Called(ctx, username))
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return userResult(m.Called(ctx, email))
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	return userResult(m.Called(ctx, username, email))
}

func (m *MockUserRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	return userResult(m.Called(ctx, user))
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockSessionRepository is a mock type for the storage.SessionRepository type
type MockSessionRepository struct {
	mock.Mock
}

var _ storage.SessionRepository = (*MockSessionRepository)(nil)

func (m *MockSessionRepository) Store(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	return m.Called(ctx, token, userID, ttl).Error(0)
}

func (m *MockSessionRepository) Consume(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// MockItemColorRepository is a mock type for the storage.ItemColorRepository type
type MockItemColorRepository struct {
	mock.Mock
}

var _ storage.ItemColorRepository = (*MockItemColorRepository)(nil)

func colorResult(args mock.Arguments) (*models.ItemColor, error) {
	var c *models.ItemColor
	if v := args.Get(0); v != nil {
		c = v.(*models.ItemColor)
	}
	return c, args.Error(1)
}

func (m *MockItemColorRepository) GetAll(ctx context.Context) ([]models.ItemColor, error) {
	args := m.Called(ctx)
	var colors []models.ItemColor
	if v := args.Get(0); v != nil {
		colors = v.([]models.ItemColor)
	}
	return colors, args.Error(1)
}

func (m *MockItemColorRepository) GetByID(ctx context.Context, id int64) (*models.ItemColor, error) {
	return colorResult(m.Called(ctx, id))
}

func (m *MockItemColorRepository) Save(ctx context.Context, color *models.ItemColor) (*models.ItemColor, error) {
	return colorResult(m.Called(ctx, color))
}

func (m *MockItemColorRepository) Update(ctx context.Context, color *models.ItemColor) (*models.ItemColor, error) {
	return colorResult(m.Called(ctx, color))
}

func (m *MockItemColorRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockRelationshipRepository is a mock type for the storage.RelationshipRepository type
type MockRelationshipRepository struct {
	mock.Mock
}

var _ storage.RelationshipRepository = (*MockRelationshipRepository)(nil)

func relationshipResult(args mock.Arguments) (*models.UserRelationship, error) {
	var r *models.UserRelationship
	if v := args.Get(0); v != nil {
		r = v.(*models.UserRelationship)
	}
	return r, args.Error(1)
}

func (m *MockRelationshipRepository) Get(ctx context.Context, firstID, secondID int64) (*models.UserRelationship, error) {
	return relationshipResult(m.Called(ctx, firstID, secondID))
}

func (m *MockRelationshipRepository) ListForUser(ctx context.Context, userID int64) ([]models.UserRelationship, error) {
	args := m.Called(ctx, userID)
	var rels []models.UserRelationship
	if v := args.Get(0); v != nil {
		rels = v.([]models.UserRelationship)
	}
	return rels, args.Error(1)
}

func (m *MockRelationshipRepository) Upsert(ctx context.Context, firstID, secondID int64, status models.RelationshipStatus) (*models.UserRelationship, error) {
	return relationshipResult(m.Called(ctx, firstID, secondID, status))
}

func (m *MockRelationshipRepository) Delete(ctx context.Context, firstID, secondID int64) error {
	return m.Called(ctx, firstID, secondID).Error(0)
}

// MockTaskListRepository is a mock type for the storage.TaskListRepository type
type MockTaskListRepository struct {
	mock.Mock
}

var _ storage.TaskListRepository = (*MockTaskListRepository)(nil)

func taskListResult(args mock.Arguments) (*models.TaskList, error) {
	var l *models.TaskList
	if v := args.Get(0); v != nil {
		l = v.(*models.TaskList)
	}
	return l, args.Error(1)
}

func (m *MockTaskListRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.TaskList, error) {
	args := m.Called(ctx, ownerID)
	var lists []models.TaskList
	if v := args.Get(0); v != nil {
		lists = v.([]models.TaskList)
	}
	return lists, args.Error(1)
}

func (m *MockTaskListRepository) GetByID(ctx context.Context, id int64) (*models.TaskList, error) {
	return taskListResult(m.Called(ctx, id))
}

func (m *MockTaskListRepository) Save(ctx context.Context, list *models.TaskList) (*models.TaskList, error) {
	return taskListResult(m.Called(ctx, list))
}

func (m *MockTaskListRepository) Update(ctx context.Context, list *models.TaskList) (*models.TaskList, error) {
	return taskListResult(m.Called(ctx, list))
}

func (m *MockTaskListRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
