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

// RelationshipRepo implements the storage.RelationshipRepository interface using PostgreSQL.
type RelationshipRepo struct {
	db *pgxpool.Pool
}

// NewRelationshipRepo creates a new RelationshipRepo.
func NewRelationshipRepo(db *pgxpool.Pool) *RelationshipRepo {
	return &RelationshipRepo{db: db}
}

var _ storage.RelationshipRepository = (*RelationshipRepo)(nil)

func relationshipSelect() sq.SelectBuilder {
	return psql.Select(
		"r.status", "r.created_at", "r.updated_at",
		"u1.id", "u1.username", "u1.email", "u1.password_hash", "u1.created_at", "u1.updated_at",
		"u2.id", "u2.username", "u2.email", "u2.password_hash", "u2.created_at", "u2.updated_at",
	).
		From("user_relationships r").
		Join("users u1 ON u1.id = r.first_user_id").
		Join("users u2 ON u2.id = r.second_user_id")
}

func scanRelationship(row pgx.Row) (models.UserRelationship, error) {
	var rel models.UserRelationship
	var status string
	err := row.Scan(
		&status, &rel.CreatedAt, &rel.UpdatedAt,
		&rel.FirstUser.ID, &rel.FirstUser.Username, &rel.FirstUser.Email, &rel.FirstUser.PasswordHash, &rel.FirstUser.CreatedAt, &rel.FirstUser.UpdatedAt,
		&rel.SecondUser.ID, &rel.SecondUser.Username, &rel.SecondUser.Email, &rel.SecondUser.PasswordHash, &rel.SecondUser.CreatedAt, &rel.SecondUser.UpdatedAt,
	)
	if err != nil {
		return rel, err
	}
	if err := rel.Status.Scan(status); err != nil {
		return rel, err
	}
	return rel, nil
}

func (r *RelationshipRepo) Get(ctx context.Context, firstID, secondID int64) (*models.UserRelationship, error) {
	query, args, err := relationshipSelect().
		Where(sq.Eq{"r.first_user_id": firstID, "r.second_user_id": secondID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build relationship query: %w", err)
	}
	rel, err := scanRelationship(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get relationship %d/%d: %w", firstID, secondID, err)
	}
	return &rel, nil
}

func (r *RelationshipRepo) ListForUser(ctx context.Context, userID int64) ([]models.UserRelationship, error) {
	query, args, err := relationshipSelect().
		Where(sq.Or{sq.Eq{"r.first_user_id": userID}, sq.Eq{"r.second_user_id": userID}}).
		OrderBy("r.updated_at DESC", "r.first_user_id", "r.second_user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build relationships query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query relationships: %w", err)
	}
	defer rows.Close()

	rels := []models.UserRelationship{}
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, fmt.Errorf("scan relationship: %w", err)
		}
		rels = append(rels, rel)
	}
	return rels, rows.Err()
}

func (r *RelationshipRepo) Upsert(ctx context.Context, firstID, secondID int64, status models.RelationshipStatus) (*models.UserRelationship, error) {
	query, args, err := psql.Insert("user_relationships").
		Columns("first_user_id", "second_user_id", "status").
		Values(firstID, secondID, string(status)).
		Suffix("ON CONFLICT (first_user_id, second_user_id) DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build relationship upsert: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if foreignKeyViolation(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("upsert relationship %d/%d: %w", firstID, secondID, err)
	}
	return r.Get(ctx, firstID, secondID)
}

func (r *RelationshipRepo) Delete(ctx context.Context, firstID, secondID int64) error {
	query, args, err := psql.Delete("user_relationships").
		Where(sq.Eq{"first_user_id": firstID, "second_user_id": secondID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build relationship delete: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete relationship %d/%d: %w", firstID, secondID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
