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

const itemColorColumns = "id, name, hex_code, created_at, updated_at"

// ItemColorRepo implements storage.ItemColorRepository on SQLite.
type ItemColorRepo struct {
	db *sql.DB
}

// NewItemColorRepo creates a new ItemColorRepo.
func NewItemColorRepo(db *sql.DB) *ItemColorRepo {
	return &ItemColorRepo{db: db}
}

var _ storage.ItemColorRepository = (*ItemColorRepo)(nil)

func scanItemColor(row rowScanner) (models.ItemColor, error) {
	var c models.ItemColor
	var createdAt, updatedAt int64
	if err := row.Scan(&c.ID, &c.Name, &c.HexCode, &createdAt, &updatedAt); err != nil {
		return c, err
	}
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	return c, nil
}

func (r *ItemColorRepo) GetAll(ctx context.Context) ([]models.ItemColor, error) {
	query, args, err := builder.Select(itemColorColumns).From("item_colors").OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item colors query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query item colors: %w", err)
	}
	defer rows.Close()

	colors := []models.ItemColor{}
	for rows.Next() {
		c, err := scanItemColor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item color: %w", err)
		}
		colors = append(colors, c)
	}
	return colors, rows.Err()
}

func (r *ItemColorRepo) GetByID(ctx context.Context, id int64) (*models.ItemColor, error) {
	query, args, err := builder.Select(itemColorColumns).From("item_colors").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item color query: %w", err)
	}
	c, err := scanItemColor(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get item color %d: %w", id, err)
	}
	return &c, nil
}

func (r *ItemColorRepo) Save(ctx context.Context, color *models.ItemColor) (*models.ItemColor, error) {
	ts := now()
	query, args, err := builder.Insert("item_colors").
		Columns("name", "hex_code", "created_at", "updated_at").
		Values(color.Name, color.HexCode, toMillis(ts), toMillis(ts)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item color insert: %w", err)
	}

	saved := *color
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&saved.ID); err != nil {
		if uniqueViolation(err, "item_colors.") {
			return nil, fmt.Errorf("%w: item color name or hex code already exists", storage.ErrConflict)
		}
		return nil, fmt.Errorf("insert item color: %w", err)
	}
	saved.CreatedAt = ts
	saved.UpdatedAt = ts
	return &saved, nil
}

func (r *ItemColorRepo) Update(ctx context.Context, color *models.ItemColor) (*models.ItemColor, error) {
	query, args, err := builder.Update("item_colors").
		Set("name", color.Name).
		Set("hex_code", color.HexCode).
		Set("updated_at", toMillis(now())).
		Where(sq.Eq{"id": color.ID}).
		Suffix("RETURNING " + itemColorColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item color update: %w", err)
	}
	c, err := scanItemColor(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, storage.ErrNotFound
		case uniqueViolation(err, "item_colors."):
			return nil, fmt.Errorf("%w: item color name or hex code already exists", storage.ErrConflict)
		}
		return nil, fmt.Errorf("update item color %d: %w", color.ID, err)
	}
	return &c, nil
}

func (r *ItemColorRepo) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := builder.Delete("item_colors").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build item color delete: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete item color %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
