package backends

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/exactauth/internal/common"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
	"github.com/dmitrijs2005/exactauth/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verifierFunc func(ctx context.Context, identifier, secret string) (*models.Account, error)

func (f verifierFunc) Authenticate(ctx context.Context, identifier, secret string) (*models.Account, error) {
	return f(ctx, identifier, secret)
}

func static(a *models.Account, err error, calls *int) Factory {
	return func(Deps) (CredentialVerifier, error) {
		return verifierFunc(func(context.Context, string, string) (*models.Account, error) {
			*calls++
			return a, err
		}), nil
	}
}

func TestRegistry_BuildExact(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewRegistry()
	chain, err := r.Build([]string{ExactBackend}, Deps{DB: db, RepoManager: repomanager.NewPostgresRepositoryManager(), Hasher: &countingHasher{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"exact"}, chain.Names())
	require.Len(t, chain.verifiers, 1)
	assert.IsType(t, &ModelBackend{}, chain.verifiers[0])
}

func TestRegistry_Errors(t *testing.T) {
	r := NewRegistry()

	_, err := r.Build(nil, Deps{})
	assert.ErrorContains(t, err, "no authentication backends")

	_, err = r.Build([]string{"ldap"}, Deps{})
	assert.ErrorContains(t, err, `unknown authentication backend "ldap"`)

	assert.Error(t, r.Register(ExactBackend, static(nil, nil, new(int))))
	assert.Error(t, r.Register("", static(nil, nil, new(int))))

	require.NoError(t, r.Register("broken", func(Deps) (CredentialVerifier, error) { return nil, errors.New("no config") }))
	_, err = r.Build([]string{"broken"}, Deps{})
	assert.ErrorContains(t, err, `backend "broken": no config`)

	assert.Equal(t, []string{"broken", "exact"}, r.Names())
}

func TestChain_Order(t *testing.T) {
	var first, second int
	r := NewRegistry()
	require.NoError(t, r.Register("first", static(nil, common.ErrorUnauthorized, &first)))
	require.NoError(t, r.Register("second", static(&models.Account{ID: "2"}, nil, &second)))

	chain, err := r.Build([]string{"first", "second"}, Deps{})
	require.NoError(t, err)

	got, err := chain.Authenticate(context.Background(), "mena", "pw")
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestChain_StopsOnStoreError(t *testing.T) {
	var first, second int
	storeErr := errors.New("db down")
	r := NewRegistry()
	require.NoError(t, r.Register("first", static(nil, storeErr, &first)))
	require.NoError(t, r.Register("second", static(&models.Account{}, nil, &second)))

	chain, err := r.Build([]string{"first", "second"}, Deps{})
	require.NoError(t, err)

	_, err = chain.Authenticate(context.Background(), "mena", "pw")
	assert.Same(t, storeErr, err)
	assert.Zero(t, second)
}

func TestChain_AllFail(t *testing.T) {
	var n int
	r := NewRegistry()
	require.NoError(t, r.Register("no", static(nil, common.ErrorUnauthorized, &n)))
	chain, err := r.Build([]string{"no", "no"}, Deps{})
	require.NoError(t, err)

	_, err = chain.Authenticate(context.Background(), "mena", "pw")
	assert.Same(t, common.ErrorUnauthorized, err)
	assert.Equal(t, 2, n)

	_, err = (&Chain{}).Authenticate(context.Background(), "mena", "pw")
	assert.Same(t, common.ErrorUnauthorized, err)
}
