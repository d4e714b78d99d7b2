package postgres

import (
	"context"
	"errors"
	"fmt"

	"taskhub-api/internal/models"
	"taskhub-api/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db *pgxpool.Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	query, args, err := psql.Select(userColumns).From("users").OrderBy("username ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build users query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) findOne(ctx context.Context, where sq.Sqlizer) (*models.User, error) {
	query, args, err := psql.Select(userColumns).From("users").Where(where).OrderBy("id ASC").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, sq.Eq{"username": username})
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, sq.Eq{"email": email})
}

func (r *UserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	or := sq.Or{}
	if username != "" {
		or = append(or, sq.Eq{"username": username})
	}
	if email != "" {
		or = append(or, sq.Eq{"email": email})
	}
	if len(or) == 0 {
		return nil, storage.ErrNotFound
	}
	return r.findOne(ctx, or)
}

func (r *UserRepo) Save(ctx context.Context, user *models.User) (*models.User, error) {
	query, args, err := psql.Insert("users").
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}
	saved, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case uniqueViolation(err, "users_email_key"):
			return nil, storage.ErrDuplicateEmail
		case uniqueViolation(err, "users_username_key"):
			return nil, storage.ErrDuplicateUsername
		case uniqueViolation(err, ""):
			return nil, storage.ErrConflict
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &saved, nil
}

func (r *UserRepo) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build user delete: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
