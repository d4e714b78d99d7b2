package storage

import (
	"context"
	"time"

	"taskhub-api/internal/models"
)

// UserRepository defines the interface for user data operations.
// Find* methods return ErrNotFound when no row matches.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	// Save inserts the user and returns it with ID and timestamps assigned.
	// Duplicates map to ErrDuplicateUsername or ErrDuplicateEmail (both wrap ErrConflict).
	Save(ctx context.Context, user *models.User) (*models.User, error)
	DeleteByID(ctx context.Context, id int64) error
}

// ItemColorRepository defines the interface for item color data operations.
// A duplicate name or hex code yields ErrConflict.
type ItemColorRepository interface {
	GetAll(ctx context.Context) ([]models.ItemColor, error)
	GetByID(ctx context.Context, id int64) (*models.ItemColor, error)
	Save(ctx context.Context, color *models.ItemColor) (*models.ItemColor, error)
	Update(ctx context.Context, color *models.ItemColor) (*models.ItemColor, error)
	DeleteByID(ctx context.Context, id int64) error
}

// RelationshipRepository stores one row per ordered pair (firstID < secondID).
type RelationshipRepository interface {
	Get(ctx context.Context, firstID, secondID int64) (*models.UserRelationship, error)
	ListForUser(ctx context.Context, userID int64) ([]models.UserRelationship, error)
	// Upsert writes status for the pair and returns the stored relationship.
	Upsert(ctx context.Context, firstID, secondID int64, status models.RelationshipStatus) (*models.UserRelationship, error)
	Delete(ctx context.Context, firstID, secondID int64) error
}

// TaskListRepository defines the interface for task list data operations.
type TaskListRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.TaskList, error)
	GetByID(ctx context.Context, id int64) (*models.TaskList, error)
	Save(ctx context.Context, list *models.TaskList) (*models.TaskList, error)
	Update(ctx context.Context, list *models.TaskList) (*models.TaskList, error)
	DeleteByID(ctx context.Context, id int64) error
}

// SessionRepository keeps refresh tokens for issued sessions.
type SessionRepository interface {
	Store(ctx context.Context, token string, userID int64, ttl time.Duration) error
	// Consume returns the user of the token and deletes it; unknown or expired tokens
	// yield ErrNotFound.
	Consume(ctx context.Context, token string) (int64, error)
	Revoke(ctx context.Context, token string) error
}
