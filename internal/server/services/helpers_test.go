package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/exactauth/internal/dbx"
	"github.com/dmitrijs2005/exactauth/internal/logging"
	"github.com/dmitrijs2005/exactauth/internal/security/password"
	"github.com/dmitrijs2005/exactauth/internal/server/backends"
	"github.com/dmitrijs2005/exactauth/internal/server/config"
	"github.com/dmitrijs2005/exactauth/internal/server/metrics"
	"github.com/dmitrijs2005/exactauth/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db       *sql.DB
	rm       repomanager.RepositoryManager
	hasher   password.Config
	accounts *AccountService
	auth     *AuthService
	metrics  *metrics.Metrics
}

func fastHasher() password.Config {
	cfg := password.DefaultConfig()
	cfg.Params.MemoryKiB = 64
	cfg.Params.Iterations = 1
	cfg.Params.Parallelism = 1
	return cfg
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
}

// newTestEnv wires the services over a migrated in-memory SQLite database
// with real hashing.
func newTestEnv(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, err := dbx.Open(ctx, dbx.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rm := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, rm.RunMigrations(ctx, db))

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	h := fastHasher()
	chain, err := backends.NewRegistry().Build([]string{backends.ExactBackend}, backends.Deps{DB: db, RepoManager: rm, Hasher: h})
	require.NoError(t, err)

	mt := metrics.New()
	log := logging.Nop()
	return &testEnv{
		db:       db,
		rm:       rm,
		hasher:   h,
		accounts: NewAccountService(db, rm, h, mt, log),
		auth:     NewAuthService(db, rm, chain, cfg, mt, log),
		metrics:  mt,
	}
}
