package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"taskhub-api/config"
	"taskhub-api/internal/models"
	"taskhub-api/internal/storage"
	"taskhub-api/internal/transport/dto"
	"taskhub-api/internal/transport/mapper"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when an email is unknown so a failed login costs the
// same bcrypt work whether or not the account exists.
var dummyHash = sync.OnceValue(func() string {
	hash, err := HashPassword("not-a-real-password", bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
})

type userService struct {
	repo     storage.UserRepository
	sessions storage.SessionRepository
	validate *validator.Validate
	logger   *zap.Logger
	jwt      config.JWTConfig
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, sessions storage.SessionRepository, v *validator.Validate, logger *zap.Logger, jwtCfg config.JWTConfig) UserService {
	return &userService{
		repo:     repo,
		sessions: sessions,
		validate: v,
		logger:   logger.Named("users"),
		jwt:      jwtCfg,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error) {
	if err := validate(s.validate, req); err != nil {
		return nil, err
	}
	req.Normalize()

	hash, err := HashPassword(req.Password, bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Save(ctx, &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) {
			return nil, fmt.Errorf("%w: username already taken", ErrConflict)
		}
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, MapRepoError(s.logger, err, "register user")
	}
	s.logger.Info("user registered", zap.Int64("user_id", user.ID))
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := validate(s.validate, req); err != nil {
		return nil, err
	}
	user, found, err := s.FindByEmailAndPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Debug("login failed", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token: the presented token is consumed and a new pair issued.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	if err := validate(s.validate, req); err != nil {
		return nil, err
	}
	userID, err := s.sessions.Consume(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, MapRepoError(s.logger, err, "consume refresh token")
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Account deleted after the token was issued.
			return nil, ErrInvalidCredentials
		}
		return nil, MapRepoError(s.logger, err, "refresh user")
	}
	return s.issueTokens(ctx, user)
}

func (s *userService) Logout(ctx context.Context, req *dto.RefreshRequest) error {
	if err := validate(s.validate, req); err != nil {
		return err
	}
	if err := s.sessions.Revoke(ctx, req.RefreshToken); err != nil {
		return MapRepoError(s.logger, err, "revoke refresh token")
	}
	return nil
}

func (s *userService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user.ID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwt.Expiration)),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken := uuid.NewString()
	if err := s.sessions.Store(ctx, refreshToken, user.ID, s.jwt.RefreshExpiration); err != nil {
		return nil, MapRepoError(s.logger, err, "store refresh token")
	}

	return &dto.AuthResponse{
		User:         mapper.UserToDTO(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwt.Expiration / time.Second),
	}, nil
}

// optional turns a repository lookup into the (entity, found, error) form.
func (s *userService) optional(user *models.User, err error, operation string) (*models.User, bool, error) {
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, MapRepoError(s.logger, err, operation)
	}
	return user, true, nil
}

func (s *userService) FindByUsername(ctx context.Context, username string) (*models.User, bool, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	return s.optional(user, err, "find user by username")
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	return s.optional(user, err, "find user by email")
}

func (s *userService) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, bool, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" && email == "" {
		return nil, false, fieldError("username", "username or email is required")
	}
	user, err := s.repo.FindByUsernameOrEmail(ctx, username, email)
	return s.optional(user, err, "find user by username or email")
}

func (s *userService) FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, bool, error) {
	user, found, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if !found {
		_ = CheckPassword(dummyHash(), password)
		return nil, false, nil
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, false, nil
	}
	return user, true, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, MapRepoError(s.logger, err, "list users")
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(s.logger, err, fmt.Sprintf("get user %d", id))
	}
	return user, nil
}

// Delete removes an account. Users may only delete themselves; an unknown id is
// reported as ErrNotFound rather than ignored.
func (s *userService) Delete(ctx context.Context, actorID, id int64) error {
	if actorID != id {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return MapRepoError(s.logger, err, fmt.Sprintf("delete user %d", id))
		}
		return fmt.Errorf("%w: users can only delete their own account", ErrForbidden)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return MapRepoError(s.logger, err, fmt.Sprintf("delete user %d", id))
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}
