// Package services holds the server's business logic: account provisioning
// and maintenance (AccountService) and login with token issuing
// (AuthService).
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
	"github.com/dmitrijs2005/exactauth/internal/server/auth"
	"github.com/dmitrijs2005/exactauth/internal/server/backends"
	"github.com/dmitrijs2005/exactauth/internal/server/config"
	"github.com/dmitrijs2005/exactauth/internal/server/metrics"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
	"github.com/dmitrijs2005/exactauth/internal/server/repositories/repomanager"
	"golang.org/x/time/rate"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService authenticates through the configured verifier chain and
// issues tokens.
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	verifier                     backends.CredentialVerifier
	limiter                      *rate.Limiter
	metrics                      *metrics.Metrics
	log                          logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService that authenticates through
// verifier and signs tokens with the key and validity periods in cfg.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, verifier backends.CredentialVerifier,
	cfg *config.Config, mt *metrics.Metrics, log logging.Logger) *AuthService {
	s := &AuthService{
		db:                           db,
		repomanager:                  m,
		verifier:                     verifier,
		metrics:                      mt,
		log:                          log.With("module", "auth"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
	if cfg.LoginRatePerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.LoginRatePerSecond), max(cfg.LoginBurst, 1))
	}
	return s
}

// Authenticate runs the verifier chain. Credential problems of any kind
// return common.ErrorUnauthorized; store errors come back unchanged.
// It does not write anything.
func (s *AuthService) Authenticate(ctx context.Context, identifier, secret string) (*models.Account, error) {
	if s.limiter != nil && !s.limiter.Allow() {
		s.metrics.ObserveAuthentication(metrics.OutcomeRateLimited)
		return nil, common.ErrorRateLimited
	}

	account, err := s.verifier.Authenticate(ctx, identifier, secret)
	switch {
	case err == nil:
		s.metrics.ObserveAuthentication(metrics.OutcomeSuccess)
	case errors.Is(err, common.ErrorUnauthorized):
		s.metrics.ObserveAuthentication(metrics.OutcomeFailure)
	default:
		s.metrics.ObserveAuthentication(metrics.OutcomeError)
		s.log.Error(ctx, "authentication backend failed", "error", err)
	}
	return account, err
}

// Login authenticates and, on success, issues a new TokenPair.
func (s *AuthService) Login(ctx context.Context, identifier, secret string) (*models.Account, *TokenPair, error) {
	account, err := s.Authenticate(ctx, identifier, secret)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.generateTokenPair(ctx, account, s.db)
	if err != nil {
		return nil, nil, err
	}
	return account, pair, nil
}

// RefreshToken rotates a refresh token inside one transaction and returns a
// fresh pair. Unknown tokens and tokens of deleted or inactive accounts
// yield common.ErrorUnauthorized; expired ones common.ErrRefreshTokenExpired.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		account, err := s.repomanager.Accounts(tx).FindByID(ctx, token.AccountID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return err
		}
		if !account.IsActive {
			return common.ErrorUnauthorized
		}
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		pair, err = s.generateTokenPair(ctx, account, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// WhoAmI resolves an access token to its current account.
func (s *AuthService) WhoAmI(ctx context.Context, accessToken string) (*models.Account, error) {
	sub, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return s.AccountFromSubject(ctx, sub)
}

// AccountFromSubject loads the active account a token was issued to.
func (s *AuthService) AccountFromSubject(ctx context.Context, sub auth.Subject) (*models.Account, error) {
	account, err := s.repomanager.Accounts(s.db).FindByID(ctx, sub.AccountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, common.ErrorUnauthorized
	}
	return account, nil
}

// ParseAccessToken validates a token without touching the store.
func (s *AuthService) ParseAccessToken(token string) (auth.Subject, error) {
	return auth.ParseToken(token, s.jwtSecret)
}

func (s *AuthService) generateTokenPair(ctx context.Context, account *models.Account, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(auth.Subject{
		AccountID:   account.ID,
		IsStaff:     account.IsStaff,
		IsSuperuser: account.IsSuperuser,
	}, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, account.ID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
