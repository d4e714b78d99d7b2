package handlers_test

import (
	"context"
	"strconv"
	"time"

	"taskhub-api/internal/models"
	"taskhub-api/internal/services"
	"taskhub-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

const testSecret = "handler-test-secret"

func generateTestToken(userID int64, secret string, expiration time.Duration) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// MockUserService is a mock type for the services.UserService interface
type MockUserService struct {
	mock.Mock
}

var _ services.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockUserService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, req *dto.RefreshRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockUserService) optional(args mock.Arguments) (*models.User, bool, error) {
	var u *models.User
	if v := args.Get(0); v != nil {
		u = v.(*models.User)
	}
	return u, args.Bool(1), args.Error(2)
}

func (m *MockUserService) FindByUsername(ctx context.Context, username string) (*models.User, bool, error) {
	return m.optional(m.Called(ctx, username))
}

func (m *MockUserService) FindByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	return m.optional(m.Called(ctx, email))
}

func (m *MockUserService) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, bool, error) {
	return m.optional(m.Called(ctx, username, email))
}

func (m *MockUserService) FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, bool, error) {
	return m.optional(m.Called(ctx, email, password))
}

func (m *MockUserService) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, actorID, id int64) error {
	return m.Called(ctx, actorID, id).Error(0)
}

// MockItemColorService is a mock type for the services.ItemColorService interface
type MockItemColorService struct {
	mock.Mock
}

var _ services.ItemColorService = (*MockItemColorService)(nil)

func (m *MockItemColorService) Create(ctx context.Context, req *dto.ItemColorCreateDTO) (*dto.ItemColorDTO, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ItemColorDTO), args.Error(1)
}

func (m *MockItemColorService) Update(ctx context.Context, id int64, req *dto.ItemColorCreateDTO) (*dto.ItemColorDTO, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ItemColorDTO), args.Error(1)
}

func (m *MockItemColorService) GetByID(ctx context.Context, id int64) (*dto.ItemColorDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ItemColorDTO), args.Error(1)
}

func (m *MockItemColorService) GetAll(ctx context.Context) ([]dto.ItemColorDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ItemColorDTO), args.Error(1)
}

func (m *MockItemColorService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockRelationshipService is a mock type for the services.RelationshipService interface
type MockRelationshipService struct {
	mock.Mock
}

var _ services.RelationshipService = (*MockRelationshipService)(nil)

func relationshipResult(args mock.Arguments) (*dto.UserRelationshipDTO, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserRelationshipDTO), args.Error(1)
}

func (m *MockRelationshipService) Get(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error) {
	return relationshipResult(m.Called(ctx, actorID, otherID))
}

func (m *MockRelationshipService) List(ctx context.Context, actorID int64) ([]dto.UserRelationshipDTO, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserRelationshipDTO), args.Error(1)
}

func (m *MockRelationshipService) SendRequest(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error) {
	return relationshipResult(m.Called(ctx, actorID, otherID))
}

func (m *MockRelationshipService) Accept(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error) {
	return relationshipResult(m.Called(ctx, actorID, otherID))
}

func (m *MockRelationshipService) Remove(ctx context.Context, actorID, otherID int64) error {
	return m.Called(ctx, actorID, otherID).Error(0)
}

func (m *MockRelationshipService) Block(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error) {
	return relationshipResult(m.Called(ctx, actorID, otherID))
}

func (m *MockRelationshipService) Unblock(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error) {
	return relationshipResult(m.Called(ctx, actorID, otherID))
}

// MockTaskListService is a mock type for the services.TaskListService interface
type MockTaskListService struct {
	mock.Mock
}

var _ services.TaskListService = (*MockTaskListService)(nil)

func taskListResult(args mock.Arguments) (*dto.TaskListDTO, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TaskListDTO), args.Error(1)
}

func (m *MockTaskListService) Create(ctx context.Context, ownerID int64, req *dto.TaskListCreateDTO) (*dto.TaskListDTO, error) {
	return taskListResult(m.Called(ctx, ownerID, req))
}

func (m *MockTaskListService) GetByID(ctx context.Context, ownerID, id int64) (*dto.TaskListDTO, error) {
	return taskListResult(m.Called(ctx, ownerID, id))
}

func (m *MockTaskListService) List(ctx context.Context, ownerID int64) ([]dto.TaskListDTO, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TaskListDTO), args.Error(1)
}

func (m *MockTaskListService) Update(ctx context.Context, ownerID, id int64, req *dto.TaskListUpdateDTO) (*dto.TaskListDTO, error) {
	return taskListResult(m.Called(ctx, ownerID, id, req))
}

func (m *MockTaskListService) Delete(ctx context.Context, ownerID, id int64) error {
	return m.Called(ctx, ownerID, id).Error(0)
}
