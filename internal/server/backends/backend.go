// Package backends holds the credential verifiers and the registry that
// turns the configured backend names into the chain used for login.
package backends

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/exactauth/internal/common"
	"github.com/dmitrijs2005/exactauth/internal/security/password"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
	"github.com/dmitrijs2005/exactauth/internal/server/repositories/accounts"
)

// CredentialVerifier checks an identifier/secret pair. On any credential
// problem it returns exactly common.ErrorUnauthorized.
type CredentialVerifier interface {
	Authenticate(ctx context.Context, identifier, secret string) (*models.Account, error)
}

// ModelBackend looks the account up by exact identifier and verifies the
// secret against the stored hash. It never writes to the store.
//
// Every outcome runs exactly one Verify: failures that have no usable hash
// to check verify against the hasher's decoy instead.
type ModelBackend struct {
	accounts accounts.Repository
	hasher   password.Hasher
	decoy    string
}

// NewModelBackend constructs a ModelBackend that reads accounts from repo
// and checks secrets with hasher.
func NewModelBackend(repo accounts.Repository, hasher password.Hasher) *ModelBackend {
	return &ModelBackend{accounts: repo, hasher: hasher, decoy: hasher.Decoy()}
}

var _ CredentialVerifier = (*ModelBackend)(nil)

func (b *ModelBackend) Authenticate(ctx context.Context, identifier, secret string) (*models.Account, error) {
	// No stored identifier can match; the store is not asked.
	if !models.StorableIdentifier(identifier) {
		return nil, b.reject(secret)
	}

	account, err := b.accounts.FindByExactIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, b.reject(secret)
		}
		return nil, err
	}
	if !password.IsUsable(account.PasswordHash) {
		return nil, b.reject(secret)
	}

	ok, err := b.hasher.Verify(account.PasswordHash, secret)
	switch {
	case err != nil:
		// The stored hash did not parse, so no derivation ran yet.
		return nil, b.reject(secret)
	case !ok, !account.IsActive:
		return nil, common.ErrorUnauthorized
	}
	return account, nil
}

// reject pays for one verification against the decoy and fails.
func (b *ModelBackend) reject(secret string) error {
	if _, err := b.hasher.Verify(b.decoy, secret); err != nil {
		return err
	}
	return common.ErrorUnauthorized
}
