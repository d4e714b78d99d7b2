package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskhub-api/internal/models"
	"taskhub-api/internal/storage"

	sq "github.com/Masterminds/squirrel"
)

const taskListColumns = "id, owner_id, name, description, created_at, updated_at"

// TaskListRepo implements storage.TaskListRepository on SQLite.
type TaskListRepo struct {
	db *sql.DB
}

// NewTaskListRepo creates a new TaskListRepo.
func NewTaskListRepo(db *sql.DB) *TaskListRepo {
	return &TaskListRepo{db: db}
}

var _ storage.TaskListRepository = (*TaskListRepo)(nil)

func scanTaskList(row rowScanner) (models.TaskList, error) {
	var l models.TaskList
	var createdAt, updatedAt int64
	if err := row.Scan(&l.ID, &l.OwnerID, &l.Name, &l.Description, &createdAt, &updatedAt); err != nil {
		return l, err
	}
	l.CreatedAt = fromMillis(createdAt)
	l.UpdatedAt = fromMillis(updatedAt)
	return l, nil
}

func (r *TaskListRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.TaskList, error) {
	query, args, err := builder.Select(taskListColumns).From("task_lists").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task lists query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query task lists: %w", err)
	}
	defer rows.Close()

	lists := []models.TaskList{}
	for rows.Next() {
		l, err := scanTaskList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task list: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (r *TaskListRepo) GetByID(ctx context.Context, id int64) (*models.TaskList, error) {
	query, args, err := builder.Select(taskListColumns).From("task_lists").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task list query: %w", err)
	}
	l, err := scanTaskList(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get task list %d: %w", id, err)
	}
	return &l, nil
}

func (r *TaskListRepo) Save(ctx context.Context, list *models.TaskList) (*models.TaskList, error) {
	ts := now()
	query, args, err := builder.Insert("task_lists").
		Columns("owner_id", "name", "description", "created_at", "updated_at").
		Values(list.OwnerID, list.Name, list.Description, toMillis(ts), toMillis(ts)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task list insert: %w", err)
	}

	saved := *list
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&saved.ID); err != nil {
		if foreignKeyViolation(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("insert task list: %w", err)
	}
	saved.CreatedAt = ts
	saved.UpdatedAt = ts
	return &saved, nil
}

func (r *TaskListRepo) Update(ctx context.Context, list *models.TaskList) (*models.TaskList, error) {
	query, args, err := builder.Update("task_lists").
		Set("name", list.Name).
		Set("description", list.Description).
		Set("updated_at", toMillis(now())).
		Where(sq.Eq{"id": list.ID}).
		Suffix("RETURNING " + taskListColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task list update: %w", err)
	}
	l, err := scanTaskList(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("update task list %d: %w", list.ID, err)
	}
	return &l, nil
}

func (r *TaskListRepo) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := builder.Delete("task_lists").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build task list delete: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete task list %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
