package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/exactauth/internal/common"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPgRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var accountRowColumns = []string{"id", "identifier", "password_hash", "is_staff", "is_superuser", "is_active", "created_at", "updated_at"}

func sampleAccount() *models.Account {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return &models.Account{
		ID:           "0b0c6f5e-3d5c-4b8e-9a5e-1f2a3b4c5d6e",
		Identifier:   "Mena",
		PasswordHash: "$argon2id$v=19$m=64,t=1,p=1$c2FsdA$a2V5",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPostgres_Create(t *testing.T) {
	repo, mock := newPgRepoWithMock(t)
	a := sampleAccount()

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+accounts\b.*VALUES\s*\(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8\)`).
		WithArgs(a.ID, "Mena", a.PasswordHash, false, false, true, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), a))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Create_UniqueViolation(t *testing.T) {
	repo, mock := newPgRepoWithMock(t)

	mock.ExpectExec(`INSERT\s+INTO\s+accounts`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_accounts_identifier"})

	err := repo.Create(context.Background(), sampleAccount())
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestPostgres_Create_DBError(t *testing.T) {
	repo, mock := newPgRepoWithMock(t)

	mock.ExpectExec(`INSERT\s+INTO\s+accounts`).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), sampleAccount())
	assert.EqualError(t, err, "db error: db down")
}

func TestPostgres_FindByExactIdentifier(t *testing.T) {
	repo, mock := newPgRepoWithMock(t)
	a := sampleAccount()

	mock.ExpectQuery(`(?s)SELECT\s+id, identifier,.*FROM\s+accounts\s+WHERE\s+identifier\s*=\s*\$1$`).
		WithArgs("Mena").
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(a.ID, a.Identifier, a.PasswordHash, false, false, true, a.CreatedAt, a.UpdatedAt))

	got, err := repo.FindByExactIdentifier(context.Background(), "Mena")
	require.NoError(t, err)
	assert.Equal(t, a, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_FindByExactIdentifier_PassesIdentifierVerbatim(t *testing.T) {
	repo, mock := newPgRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+accounts\s+WHERE\s+identifier`).
		WithArgs(" mena ").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByExactIdentifier(context.Background(), " mena ")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_FindByID_DBError(t *testing.T) {
	repo, mock := newPgRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("id-1").
		WillReturnError(errors.New("boom"))

	_, err := repo.FindByID(context.Background(), "id-1")
	assert.EqualError(t, err, "db error: boom")
}

func TestPostgres_Save(t *testing.T) {
	repo, mock := newPgRepoWithMock(t)
	a := sampleAccount()
	a.IsStaff = true

	mock.ExpectExec(`(?s)UPDATE\s+accounts\s+SET\s+password_hash`).
		WithArgs(a.ID, a.PasswordHash, true, false, true, a.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Save(context.Background(), a))

	mock.ExpectExec(`UPDATE\s+accounts`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Save(context.Background(), a), common.ErrorNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Delete(t *testing.T) {
	repo, mock := newPgRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "id-1"))

	mock.ExpectExec(`DELETE\s+FROM\s+accounts`).
		WithArgs("id-2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "id-2"), common.ErrorNotFound)

	mock.ExpectExec(`DELETE\s+FROM\s+accounts`).WillReturnError(errors.New("boom"))
	assert.EqualError(t, repo.Delete(context.Background(), "id-3"), "db error: boom")
}

func TestPostgres_List(t *testing.T) {
	repo, mock := newPgRepoWithMock(t)
	a := sampleAccount()

	mock.ExpectQuery(`ORDER\s+BY\s+identifier`).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow("1", "Mena", a.PasswordHash, false, false, true, a.CreatedAt, a.UpdatedAt).
			AddRow("2", "mena", a.PasswordHash, true, true, true, a.CreatedAt, a.UpdatedAt))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mena", got[0].Identifier)
	assert.Equal(t, "mena", got[1].Identifier)
	assert.True(t, got[1].IsSuperuser)
}

func TestPostgres_List_ScanError(t *testing.T) {
	repo, mock := newPgRepoWithMock(t)

	mock.ExpectQuery(`ORDER\s+BY\s+identifier`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("1"))

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "db error")
}
