package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/exactauth/internal/common"
	"github.com/dmitrijs2005/exactauth/internal/dbx"
	"github.com/dmitrijs2005/exactauth/internal/logging"
	"github.com/dmitrijs2005/exactauth/internal/security/password"
	"github.com/dmitrijs2005/exactauth/internal/server/metrics"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
	"github.com/dmitrijs2005/exactauth/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/exactauth/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Flags are optional account flag values. Nil leaves the default (on
// create) or the current value (on SetFlags).
type Flags struct {
	IsStaff     *bool
	IsSuperuser *bool
	IsActive    *bool
}

// errDuplicate matches both common.ErrorValidation and
// common.ErrorAlreadyExists.
var errDuplicate = fmt.Errorf("%w: identifier %w", common.ErrorValidation, common.ErrorAlreadyExists)

// Bool returns a pointer to v, for building Flags.
func Bool(v bool) *bool { return &v }

// AccountService provisions and maintains accounts. Identifiers are stored
// exactly as given.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      password.Hasher
	metrics     *metrics.Metrics
	log         logging.Logger
}

// NewAccountService constructs an AccountService over db using the
// repositories from m.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher password.Hasher, mt *metrics.Metrics, log logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		metrics:     mt,
		log:         log.With("module", "accounts"),
	}
}

// CreateAccount provisions a regular account. Flags default to
// is_staff=false, is_superuser=false, is_active=true. An empty secret
// stores an unusable password.
func (s *AccountService) CreateAccount(ctx context.Context, identifier, secret string, extra Flags) (*models.Account, error) {
	return s.create(ctx, identifier, secret, extra.orDefault(false), "regular")
}

// CreatePrivilegedAccount provisions an account with is_staff and
// is_superuser set. Passing false for either is a validation error.
func (s *AccountService) CreatePrivilegedAccount(ctx context.Context, identifier, secret string, extra Flags) (*models.Account, error) {
	if extra.IsStaff != nil && !*extra.IsStaff {
		return nil, fmt.Errorf("%w: privileged account must have is_staff=true", common.ErrorValidation)
	}
	if extra.IsSuperuser != nil && !*extra.IsSuperuser {
		return nil, fmt.Errorf("%w: privileged account must have is_superuser=true", common.ErrorValidation)
	}
	return s.create(ctx, identifier, secret, extra.orDefault(true), "privileged")
}

func (s *AccountService) create(ctx context.Context, identifier, secret string, flags Flags, kind string) (*models.Account, error) {
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", common.ErrorValidation)
	}
	if !models.StorableIdentifier(identifier) {
		return nil, fmt.Errorf("%w: identifier must be valid UTF-8 without NUL", common.ErrorValidation)
	}

	repo := s.repomanager.Accounts(s.db)

	_, err := repo.FindByExactIdentifier(ctx, identifier)
	switch {
	case err == nil:
		return nil, errDuplicate
	case !errors.Is(err, common.ErrorNotFound):
		return nil, err
	}

	hash, err := s.hashSecret(secret)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:           uuid.NewString(),
		Identifier:   identifier,
		PasswordHash: hash,
		IsStaff:      *flags.IsStaff,
		IsSuperuser:  *flags.IsSuperuser,
		IsActive:     *flags.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, errDuplicate
		}
		return nil, err
	}

	s.metrics.ObserveProvisioned(kind)
	s.log.Info(ctx, "account created", "account_id", account.ID, "identifier", account.Identifier, "kind", kind)
	return account, nil
}

// GetAccount returns the account whose identifier matches byte for byte.
func (s *AccountService) GetAccount(ctx context.Context, identifier string) (*models.Account, error) {
	return findExact(ctx, s.repomanager.Accounts(s.db), identifier)
}

// GetAccountByID returns the account with the given id.
func (s *AccountService) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	return s.repomanager.Accounts(s.db).FindByID(ctx, id)
}

// ListAccounts returns every account in byte order of identifier.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	return s.repomanager.Accounts(s.db).List(ctx)
}

// SetPassword replaces the stored hash and revokes the account's refresh
// tokens.
func (s *AccountService) SetPassword(ctx context.Context, identifier, secret string) error {
	hash, err := s.hashSecret(secret)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		account, err := findExact(ctx, s.repomanager.Accounts(tx), identifier)
		if err != nil {
			return err
		}
		account.PasswordHash = hash
		account.UpdatedAt = time.Now().UTC()
		if err := s.repomanager.Accounts(tx).Save(ctx, account); err != nil {
			return err
		}
		return s.repomanager.RefreshTokens(tx).DeleteForAccount(ctx, account.ID)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "password changed", "identifier", identifier)
	return nil
}

// SetFlags changes the non-nil flags. Deactivating an account revokes its
// refresh tokens.
func (s *AccountService) SetFlags(ctx context.Context, identifier string, flags Flags) (*models.Account, error) {
	var out *models.Account
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		account, err := findExact(ctx, s.repomanager.Accounts(tx), identifier)
		if err != nil {
			return err
		}
		if flags.IsStaff != nil {
			account.IsStaff = *flags.IsStaff
		}
		if flags.IsSuperuser != nil {
			account.IsSuperuser = *flags.IsSuperuser
		}
		if flags.IsActive != nil {
			account.IsActive = *flags.IsActive
		}
		account.UpdatedAt = time.Now().UTC()
		if err := s.repomanager.Accounts(tx).Save(ctx, account); err != nil {
			return err
		}
		if !account.IsActive {
			if err := s.repomanager.RefreshTokens(tx).DeleteForAccount(ctx, account.ID); err != nil {
				return err
			}
		}
		out = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "account flags changed", "account_id", out.ID,
		"is_staff", out.IsStaff, "is_superuser", out.IsSuperuser, "is_active", out.IsActive)
	return out, nil
}

// DeleteAccount deprovisions the account with the exact identifier.
func (s *AccountService) DeleteAccount(ctx context.Context, identifier string) error {
	repo := s.repomanager.Accounts(s.db)
	account, err := findExact(ctx, repo, identifier)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, account.ID); err != nil {
		return err
	}
	s.log.Info(ctx, "account deleted", "account_id", account.ID)
	return nil
}

// findExact is FindByExactIdentifier for admin lookups. An identifier no
// store could hold is simply not found.
func findExact(ctx context.Context, repo accounts.Repository, identifier string) (*models.Account, error) {
	if !models.StorableIdentifier(identifier) {
		return nil, common.ErrorNotFound
	}
	return repo.FindByExactIdentifier(ctx, identifier)
}

func (s *AccountService) hashSecret(secret string) (string, error) {
	if secret == "" {
		return password.Unusable()
	}
	hash, err := s.hasher.Hash(secret)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) || errors.Is(err, password.ErrPasswordTooShort) {
			return "", fmt.Errorf("%w: %w", common.ErrorValidation, err)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (f Flags) orDefault(privileged bool) Flags {
	if f.IsStaff == nil {
		f.IsStaff = Bool(privileged)
	}
	if f.IsSuperuser == nil {
		f.IsSuperuser = Bool(privileged)
	}
	if f.IsActive == nil {
		f.IsActive = Bool(true)
	}
	return f
}
