package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/exactauth/internal/common"
	"github.com/dmitrijs2005/exactauth/internal/server/auth"
	"github.com/dmitrijs2005/exactauth/internal/server/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == label && l.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestLogin_IssuesUsableTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.accounts.CreatePrivilegedAccount(ctx, "root", "s3cret", Flags{})
	require.NoError(t, err)

	acc, pair, err := env.auth.Login(ctx, "root", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, acc.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Len(t, pair.RefreshToken, 64)

	sub, err := env.auth.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, auth.Subject{AccountID: created.ID, IsStaff: true, IsSuperuser: true}, sub)

	me, err := env.auth.WhoAmI(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "root", me.Identifier)
}

func TestLogin_Failure(t *testing.T) {
	env := newTestEnv(t)

	acc, pair, err := env.auth.Login(context.Background(), "ghost", "x")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Nil(t, acc)
	assert.Nil(t, pair)
}

func TestRefreshToken_Rotates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.CreateAccount(ctx, "mena", "s3cret", Flags{})
	require.NoError(t, err)
	_, first, err := env.auth.Login(ctx, "mena", "s3cret")
	require.NoError(t, err)

	second, err := env.auth.RefreshToken(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = env.auth.RefreshToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, common.ErrorUnauthorized, "a used refresh token is gone")

	_, err = env.auth.RefreshToken(ctx, second.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshToken_Unknown(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.RefreshToken(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_Expired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	acc, err := env.accounts.CreateAccount(ctx, "mena", "s3cret", Flags{})
	require.NoError(t, err)
	require.NoError(t, env.rm.RefreshTokens(env.db).Create(ctx, acc.ID, "stale", -time.Minute))

	_, err = env.auth.RefreshToken(ctx, "stale")
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_DeletedAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.CreateAccount(ctx, "mena", "s3cret", Flags{})
	require.NoError(t, err)
	_, pair, err := env.auth.Login(ctx, "mena", "s3cret")
	require.NoError(t, err)

	require.NoError(t, env.accounts.DeleteAccount(ctx, "mena"))

	_, err = env.auth.RefreshToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = env.auth.WhoAmI(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestWhoAmI_BadToken(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.WhoAmI(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	other, err := auth.GenerateToken(auth.Subject{AccountID: "x"}, []byte("other-key"), time.Minute)
	require.NoError(t, err)
	_, err = env.auth.WhoAmI(context.Background(), other)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestAuthenticate_RateLimited(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) {
		c.LoginRatePerSecond = 0.001
		c.LoginBurst = 2
	})
	ctx := context.Background()

	_, err := env.accounts.CreateAccount(ctx, "mena", "s3cret", Flags{})
	require.NoError(t, err)

	_, err = env.auth.Authenticate(ctx, "mena", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = env.auth.Authenticate(ctx, "mena", "s3cret")
	assert.NoError(t, err)

	_, err = env.auth.Authenticate(ctx, "mena", "s3cret")
	assert.ErrorIs(t, err, common.ErrorRateLimited)
}

func TestAuthenticate_StoreErrorIsNotAuthFailure(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Close())

	_, err := env.auth.Authenticate(context.Background(), "mena", "s3cret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthenticate_Metrics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.CreateAccount(ctx, "mena", "s3cret", Flags{})
	require.NoError(t, err)

	_, _ = env.auth.Authenticate(ctx, "mena", "s3cret")
	_, _ = env.auth.Authenticate(ctx, "mena", "bad")
	_, _ = env.auth.Authenticate(ctx, "Mena", "s3cret")

	reg := env.metrics.Registry()
	assert.Equal(t, 1.0, counterValue(t, reg, "exactauth_authentications_total", "outcome", "success"))
	assert.Equal(t, 2.0, counterValue(t, reg, "exactauth_authentications_total", "outcome", "failure"))
	assert.Equal(t, 1.0, counterValue(t, reg, "exactauth_accounts_provisioned_total", "kind", "regular"))
}
