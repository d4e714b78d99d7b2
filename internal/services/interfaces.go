package services

import (
	"context"

	"taskhub-api/internal/models"
	"taskhub-api/internal/transport/dto"
)

// UserService defines the interface for user-related business logic.
// The Find* lookups report absence through the bool result, never as an error.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, req *dto.RefreshRequest) error
	FindByUsername(ctx context.Context, username string) (*models.User, bool, error)
	FindByEmail(ctx context.Context, email string) (*models.User, bool, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, bool, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, bool, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, actorID, id int64) error
}

// ItemColorService defines the interface for the item color catalogue.
type ItemColorService interface {
	Create(ctx context.Context, req *dto.ItemColorCreateDTO) (*dto.ItemColorDTO, error)
	Update(ctx context.Context, id int64, req *dto.ItemColorCreateDTO) (*dto.ItemColorDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.ItemColorDTO, error)
	GetAll(ctx context.Context) ([]dto.ItemColorDTO, error)
	Delete(ctx context.Context, id int64) error
}

// RelationshipService manages the relationship between the acting user and another user.
// Mutations return nil when the pair's relationship was removed.
type RelationshipService interface {
	Get(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error)
	List(ctx context.Context, actorID int64) ([]dto.UserRelationshipDTO, error)
	SendRequest(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error)
	Accept(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error)
	Remove(ctx context.Context, actorID, otherID int64) error
	Block(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error)
	Unblock(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error)
}

// TaskListService defines the interface for task lists. Every call is scoped to the owner.
type TaskListService interface {
	Create(ctx context.Context, ownerID int64, req *dto.TaskListCreateDTO) (*dto.TaskListDTO, error)
	GetByID(ctx context.Context, ownerID, id int64) (*dto.TaskListDTO, error)
	List(ctx context.Context, ownerID int64) ([]dto.TaskListDTO, error)
	Update(ctx context.Context, ownerID, id int64, req *dto.TaskListUpdateDTO) (*dto.TaskListDTO, error)
	Delete(ctx context.Context, ownerID, id int64) error
}
