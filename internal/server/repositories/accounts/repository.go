// Package accounts is the account store. Every lookup by identifier is a
// byte-exact match: no case folding, trimming or Unicode normalisation.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/exactauth/internal/server/models"
)

// Repository persists accounts.
type Repository interface {
	// Create inserts a new account. An identifier that already exists (exact
	// match) yields common.ErrorAlreadyExists.
	Create(ctx context.Context, account *models.Account) error

	// FindByExactIdentifier returns the single account whose identifier is
	// byte-for-byte equal to identifier, or common.ErrorNotFound.
	FindByExactIdentifier(ctx context.Context, identifier string) (*models.Account, error)

	FindByID(ctx context.Context, id string) (*models.Account, error)

	// Save writes the password hash, flags and updated_at of an existing
	// account. The identifier is immutable.
	Save(ctx context.Context, account *models.Account) error

	Delete(ctx context.Context, id string) error

	// List returns all accounts ordered by identifier in byte order.
	List(ctx context.Context) ([]*models.Account, error)
}

const accountColumns = `id, identifier, password_hash, is_staff, is_superuser, is_active, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(&a.ID, &a.Identifier, &a.PasswordHash, &a.IsStaff, &a.IsSuperuser, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}
