package accounts

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/exactauth/internal/common"
	"github.com/dmitrijs2005/exactauth/internal/dbx"
	"github.com/dmitrijs2005/exactauth/internal/server/migrations"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := dbx.Open(context.Background(), dbx.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(context.Background(), db, migrations.SQLiteDir))
	return db
}

func newAccount(id, identifier string) *models.Account {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Account{
		ID:           id,
		Identifier:   identifier,
		PasswordHash: "hash-" + id,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestSQLite_CaseVariantsCoexist(t *testing.T) {
	repo := NewSQLiteRepository(newSQLiteDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAccount("1", "mena")))
	require.NoError(t, repo.Create(ctx, newAccount("2", "Mena")))
	require.NoError(t, repo.Create(ctx, newAccount("3", "MENA")))

	got, err := repo.FindByExactIdentifier(ctx, "Mena")
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)

	got, err = repo.FindByExactIdentifier(ctx, "mena")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	_, err = repo.FindByExactIdentifier(ctx, "mEna")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_NoNormalisation(t *testing.T) {
	repo := NewSQLiteRepository(newSQLiteDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAccount("1", "caf\u00e9")))

	for _, variant := range []string{"cafe\u0301", "caf\u00e9 ", " caf\u00e9", "CAF\u00c9", "Caf\u00e9"} {
		_, err := repo.FindByExactIdentifier(ctx, variant)
		assert.ErrorIs(t, err, common.ErrorNotFound, "%q", variant)
	}
}

func TestSQLite_CreateDuplicate(t *testing.T) {
	repo := NewSQLiteRepository(newSQLiteDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAccount("1", "mena")))
	err := repo.Create(ctx, newAccount("2", "mena"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestSQLite_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(newSQLiteDB(t))
	ctx := context.Background()

	a := newAccount("1", "mena")
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, a.Identifier, got.Identifier)
	assert.Equal(t, a.PasswordHash, got.PasswordHash)
	assert.True(t, got.IsActive)
	assert.False(t, got.IsStaff)
	assert.True(t, a.CreatedAt.Equal(got.CreatedAt))

	got.PasswordHash = "new"
	got.IsStaff = true
	got.IsActive = false
	got.UpdatedAt = got.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Save(ctx, got))

	again, err := repo.FindByExactIdentifier(ctx, "mena")
	require.NoError(t, err)
	assert.Equal(t, "new", again.PasswordHash)
	assert.True(t, again.IsStaff)
	assert.False(t, again.IsActive)

	assert.ErrorIs(t, repo.Save(ctx, newAccount("missing", "x")), common.ErrorNotFound)
}

func TestSQLite_DeleteAndList(t *testing.T) {
	repo := NewSQLiteRepository(newSQLiteDB(t))
	ctx := context.Background()

	for i, id := range []string{"b", "B", "a"} {
		require.NoError(t, repo.Create(ctx, newAccount(string(rune('1'+i)), id)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	var ids []string
	for _, a := range list {
		ids = append(ids, a.Identifier)
	}
	assert.Equal(t, []string{"B", "a", "b"}, ids, "byte order puts upper case first")

	require.NoError(t, repo.Delete(ctx, "1"))
	assert.ErrorIs(t, repo.Delete(ctx, "1"), common.ErrorNotFound)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
