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

const taskListColumns = "id, owner_id, name, description, created_at, updated_at"

// TaskListRepo implements the storage.TaskListRepository interface using PostgreSQL.
type TaskListRepo struct {
	db *pgxpool.Pool
}

// NewTaskListRepo creates a new TaskListRepo.
func NewTaskListRepo(db *pgxpool.Pool) *TaskListRepo {
	return &TaskListRepo{db: db}
}

var _ storage.TaskListRepository = (*TaskListRepo)(nil)

func (r *TaskListRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.TaskList, error) {
	query, args, err := psql.Select(taskListColumns).From("task_lists").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task lists query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query task lists: %w", err)
	}
	lists, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TaskList])
	if err != nil {
		return nil, fmt.Errorf("scan task lists: %w", err)
	}
	if lists == nil {
		lists = []models.TaskList{}
	}
	return lists, nil
}

func (r *TaskListRepo) queryOne(ctx context.Context, query string, args []any) (*models.TaskList, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	l, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.TaskList])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *TaskListRepo) GetByID(ctx context.Context, id int64) (*models.TaskList, error) {
	query, args, err := psql.Select(taskListColumns).From("task_lists").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task list query: %w", err)
	}
	l, err := r.queryOne(ctx, query, args)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("get task list %d: %w", id, err)
	}
	return l, err
}

func (r *TaskListRepo) Save(ctx context.Context, list *models.TaskList) (*models.TaskList, error) {
	query, args, err := psql.Insert("task_lists").
		Columns("owner_id", "name", "description").
		Values(list.OwnerID, list.Name, list.Description).
		Suffix("RETURNING " + taskListColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task list insert: %w", err)
	}
	l, err := r.queryOne(ctx, query, args)
	if err != nil {
		if foreignKeyViolation(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("insert task list: %w", err)
	}
	return l, nil
}

func (r *TaskListRepo) Update(ctx context.Context, list *models.TaskList) (*models.TaskList, error) {
	query, args, err := psql.Update("task_lists").
		Set("name", list.Name).
		Set("description", list.Description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": list.ID}).
		Suffix("RETURNING " + taskListColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task list update: %w", err)
	}
	l, err := r.queryOne(ctx, query, args)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("update task list %d: %w", list.ID, err)
	}
	return l, err
}

func (r *TaskListRepo) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("task_lists").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build task list delete: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete task list %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
