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

const itemColorColumns = "id, name, hex_code, created_at, updated_at"

// ItemColorRepo implements the storage.ItemColorRepository interface using PostgreSQL.
type ItemColorRepo struct {
	db *pgxpool.Pool
}

// NewItemColorRepo creates a new ItemColorRepo.
func NewItemColorRepo(db *pgxpool.Pool) *ItemColorRepo {
	return &ItemColorRepo{db: db}
}

var _ storage.ItemColorRepository = (*ItemColorRepo)(nil)

func (r *ItemColorRepo) GetAll(ctx context.Context) ([]models.ItemColor, error) {
	query, args, err := psql.Select(itemColorColumns).From("item_colors").OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item colors query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query item colors: %w", err)
	}

	colors, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ItemColor])
	if err != nil {
		return nil, fmt.Errorf("scan item colors: %w", err)
	}
	if colors == nil {
		colors = []models.ItemColor{}
	}
	return colors, nil
}

func (r *ItemColorRepo) queryOne(ctx context.Context, query string, args []any) (*models.ItemColor, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ItemColor])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ItemColorRepo) GetByID(ctx context.Context, id int64) (*models.ItemColor, error) {
	query, args, err := psql.Select(itemColorColumns).From("item_colors").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item color query: %w", err)
	}
	c, err := r.queryOne(ctx, query, args)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("get item color %d: %w", id, err)
	}
	return c, err
}

func (r *ItemColorRepo) Save(ctx context.Context, color *models.ItemColor) (*models.ItemColor, error) {
	query, args, err := psql.Insert("item_colors").
		Columns("name", "hex_code").
		Values(color.Name, color.HexCode).
		Suffix("RETURNING " + itemColorColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item color insert: %w", err)
	}
	c, err := r.queryOne(ctx, query, args)
	if err != nil {
		if uniqueViolation(err, "") {
			return nil, fmt.Errorf("%w: item color name or hex code already exists", storage.ErrConflict)
		}
		return nil, fmt.Errorf("insert item color: %w", err)
	}
	return c, nil
}

func (r *ItemColorRepo) Update(ctx context.Context, color *models.ItemColor) (*models.ItemColor, error) {
	query, args, err := psql.Update("item_colors").
		Set("name", color.Name).
		Set("hex_code", color.HexCode).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": color.ID}).
		Suffix("RETURNING " + itemColorColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item color update: %w", err)
	}
	c, err := r.queryOne(ctx, query, args)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, err
		case uniqueViolation(err, ""):
			return nil, fmt.Errorf("%w: item color name or hex code already exists", storage.ErrConflict)
		}
		return nil, fmt.Errorf("update item color %d: %w", color.ID, err)
	}
	return c, nil
}

func (r *ItemColorRepo) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("item_colors").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build item color delete: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete item color %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
