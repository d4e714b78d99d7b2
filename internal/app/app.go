// Package app wires configuration, storage and services into one container.
package app

import (
	"context"
	"errors"
	"fmt"

	"taskhub-api/config"
	"taskhub-api/internal/api/openapi"
	"taskhub-api/internal/database"
	"taskhub-api/internal/services"
	"taskhub-api/internal/storage"
	"taskhub-api/internal/storage/postgres"
	redisstore "taskhub-api/internal/storage/redis"
	"taskhub-api/internal/storage/sqlite"
	"taskhub-api/internal/validation"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Application holds core application dependencies.
type Application struct {
	Config    *config.Config
	Logger    *zap.Logger
	Validator *validator.Validate
	OpenAPI   *openapi3.T

	Users         services.UserService
	ItemColors    services.ItemColorService
	Relationships services.RelationshipService
	TaskLists     services.TaskListService

	// HealthChecks are reported by GET /health, keyed by dependency name.
	HealthChecks map[string]func(ctx context.Context) error

	closers []func() error
}

// repositories is the storage backend selected by database.driver.
type repositories struct {
	users         storage.UserRepository
	itemColors    storage.ItemColorRepository
	relationships storage.RelationshipRepository
	taskLists     storage.TaskListRepository
}

// New connects the configured database and Redis, applies migrations and builds the
// services. Close releases everything New opened, also when New fails half way.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, error) {
	a := &Application{
		Config:       cfg,
		Logger:       logger,
		Validator:    validation.New(),
		HealthChecks: make(map[string]func(ctx context.Context) error),
	}

	doc, err := openapi.Load(ctx)
	if err != nil {
		return nil, err
	}
	a.OpenAPI = doc

	repos, err := a.openDatabase(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	rdb, err := database.NewRedisClient(ctx, cfg.Redis, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.closers = append(a.closers, rdb.Close)
	a.HealthChecks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }

	a.Users = services.NewUserService(repos.users, redisstore.NewSessionRepo(rdb), a.Validator, logger, cfg.JWT)
	a.ItemColors = services.NewItemColorService(repos.itemColors, a.Validator, logger)
	a.Relationships = services.NewRelationshipService(repos.relationships, repos.users, logger)
	a.TaskLists = services.NewTaskListService(repos.taskLists, a.Validator, logger)
	return a, nil
}

func (a *Application) openDatabase(ctx context.Context) (*repositories, error) {
	switch a.Config.DB.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, a.Config.DB.Path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		if err := database.MigrateSQLite(ctx, db, a.Logger); err != nil {
			return nil, err
		}
		a.HealthChecks["database"] = db.PingContext
		a.Logger.Info("using sqlite storage", zap.String("path", a.Config.DB.Path))
		return &repositories{
			users:         sqlite.NewUserRepo(db),
			itemColors:    sqlite.NewItemColorRepo(db),
			relationships: sqlite.NewRelationshipRepo(db),
			taskLists:     sqlite.NewTaskListRepo(db),
		}, nil

	case config.DriverPostgres:
		pool, err := database.NewConnectionPool(ctx, a.Config.DB, a.Logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })
		if err := database.MigratePostgres(ctx, pool, a.Logger); err != nil {
			return nil, err
		}
		a.HealthChecks["database"] = pool.Ping
		return &repositories{
			users:         postgres.NewUserRepo(pool),
			itemColors:    postgres.NewItemColorRepo(pool),
			relationships: postgres.NewRelationshipRepo(pool),
			taskLists:     postgres.NewTaskListRepo(pool),
		}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", a.Config.DB.Driver)
}

// Close releases connections in reverse order of opening.
func (a *Application) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
