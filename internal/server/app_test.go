package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/exactauth/internal/common"
	"github.com/dmitrijs2005/exactauth/internal/logging"
	"github.com/dmitrijs2005/exactauth/internal/server/config"
	"github.com/dmitrijs2005/exactauth/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:" + filepath.Join(t.TempDir(), "exactauth.db")
	c.Argon2MemoryKiB, c.Argon2Iterations, c.Argon2Parallelism = 64, 1, 1
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.EndpointAddrHTTP = "127.0.0.1:0"
	return c
}

func TestNewCore(t *testing.T) {
	ctx := context.Background()
	core, err := NewCore(ctx, sqliteConfig(t), logging.Nop(), true)
	require.NoError(t, err)
	defer core.Close()

	assert.Equal(t, []string{"exact"}, core.Chain.Names())

	_, err = core.Accounts.CreateAccount(ctx, "mena", "s3cret", services.Flags{})
	require.NoError(t, err)
	_, err = core.Auth.Authenticate(ctx, "Mena", "s3cret")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestNewCore_Errors(t *testing.T) {
	ctx := context.Background()

	c := sqliteConfig(t)
	c.AuthBackends = []string{"ldap"}
	_, err := NewCore(ctx, c, logging.Nop(), true)
	assert.Error(t, err)

	c = sqliteConfig(t)
	c.DatabaseDriver = "mysql"
	_, err = NewCore(ctx, c, logging.Nop(), true)
	assert.Error(t, err)

	c = sqliteConfig(t)
	c.Argon2Iterations = 99
	_, err = NewCore(ctx, c, logging.Nop(), true)
	assert.Error(t, err)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	app, err := NewApp(ctx, sqliteConfig(t))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
}
