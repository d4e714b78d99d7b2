package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"taskhub-api/internal/database"
	"taskhub-api/internal/models"
	"taskhub-api/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.MigrateSQLite(ctx, db, zap.NewNop()))
	return db
}

func createUser(t *testing.T, repo *UserRepo, username string) *models.User {
	t.Helper()
	u, err := repo.Save(context.Background(), &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return u
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(openTestDB(t))

	jane := createUser(t, repo, "jane")
	assert.NotZero(t, jane.ID)
	assert.False(t, jane.CreatedAt.IsZero())

	t.Run("find by username", func(t *testing.T) {
		got, err := repo.FindByUsername(ctx, "jane")
		require.NoError(t, err)
		assert.Equal(t, jane.ID, got.ID)
		assert.Equal(t, "hash", got.PasswordHash)
		assert.True(t, jane.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		_, err := repo.FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("find by username or email", func(t *testing.T) {
		got, err := repo.FindByUsernameOrEmail(ctx, "", "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, jane.ID, got.ID)

		got, err = repo.FindByUsernameOrEmail(ctx, "jane", "other@example.com")
		require.NoError(t, err)
		assert.Equal(t, jane.ID, got.ID)

		_, err = repo.FindByUsernameOrEmail(ctx, "", "")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.Save(ctx, &models.User{Username: "jane2", Email: "jane@example.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, storage.ErrDuplicateEmail)
		assert.ErrorIs(t, err, storage.ErrConflict)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := repo.Save(ctx, &models.User{Username: "jane", Email: "jane2@example.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, storage.ErrDuplicateUsername)
	})

	t.Run("get all and delete", func(t *testing.T) {
		createUser(t, repo, "adam")
		users, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "adam", users[0].Username)

		require.NoError(t, repo.DeleteByID(ctx, jane.ID))
		assert.ErrorIs(t, repo.DeleteByID(ctx, jane.ID), storage.ErrNotFound)
		_, err = repo.GetByID(ctx, jane.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestItemColorRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewItemColorRepo(openTestDB(t))

	red, err := repo.Save(ctx, &models.ItemColor{Name: "red", HexCode: "#ff0000"})
	require.NoError(t, err)
	assert.NotZero(t, red.ID)

	_, err = repo.Save(ctx, &models.ItemColor{Name: "red", HexCode: "#ee0000"})
	assert.ErrorIs(t, err, storage.ErrConflict, "duplicate name")
	_, err = repo.Save(ctx, &models.ItemColor{Name: "crimson", HexCode: "#ff0000"})
	assert.ErrorIs(t, err, storage.ErrConflict, "duplicate hex code")

	blue, err := repo.Save(ctx, &models.ItemColor{Name: "blue", HexCode: "#0000ff"})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "blue", all[0].Name)

	updated, err := repo.Update(ctx, &models.ItemColor{ID: blue.ID, Name: "navy", HexCode: "#000080"})
	require.NoError(t, err)
	assert.Equal(t, "navy", updated.Name)
	assert.Equal(t, blue.ID, updated.ID)

	_, err = repo.Update(ctx, &models.ItemColor{ID: blue.ID, Name: "red", HexCode: "#000080"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	_, err = repo.Update(ctx, &models.ItemColor{ID: 999, Name: "x", HexCode: "#000001"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err := repo.GetByID(ctx, red.ID)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", got.HexCode)

	require.NoError(t, repo.DeleteByID(ctx, red.ID))
	assert.ErrorIs(t, repo.DeleteByID(ctx, red.ID), storage.ErrNotFound)
}

func TestRelationshipRepo(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	users := NewUserRepo(db)
	repo := NewRelationshipRepo(db)

	a := createUser(t, users, "alice")
	b := createUser(t, users, "bob")
	c := createUser(t, users, "carol")

	_, err := repo.Get(ctx, a.ID, b.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	rel, err := repo.Upsert(ctx, a.ID, b.ID, models.StatusPendingFirstSecond)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingFirstSecond, rel.Status)
	assert.Equal(t, "alice", rel.FirstUser.Username)
	assert.Equal(t, "bob", rel.SecondUser.Username)

	rel, err = repo.Upsert(ctx, a.ID, b.ID, models.StatusFriends)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFriends, rel.Status)

	_, err = repo.Upsert(ctx, b.ID, c.ID, models.StatusBlockSecondFirst)
	require.NoError(t, err)

	list, err := repo.ListForUser(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.ListForUser(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.StatusFriends, list[0].Status)

	_, err = repo.Upsert(ctx, a.ID, 9999, models.StatusFriends)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, a.ID, b.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID, b.ID), storage.ErrNotFound)
}

func TestTaskListRepo(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	owner := createUser(t, NewUserRepo(db), "owner")
	repo := NewTaskListRepo(db)

	list, err := repo.Save(ctx, &models.TaskList{OwnerID: owner.ID, Name: "Chores", Description: "weekly"})
	require.NoError(t, err)
	assert.NotZero(t, list.ID)

	_, err = repo.Save(ctx, &models.TaskList{OwnerID: 9999, Name: "Orphan"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	lists, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)

	list.Name = "Errands"
	updated, err := repo.Update(ctx, list)
	require.NoError(t, err)
	assert.Equal(t, "Errands", updated.Name)
	assert.Equal(t, "weekly", updated.Description)

	require.NoError(t, repo.DeleteByID(ctx, list.ID))
	_, err = repo.GetByID(ctx, list.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
