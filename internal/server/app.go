// Package server wires the store, the credential verifier chain and the
// services together and runs the gRPC and HTTP transports.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/exactauth/internal/dbx"
	"github.com/dmitrijs2005/exactauth/internal/logging"
	"github.com/dmitrijs2005/exactauth/internal/security/password"
	"github.com/dmitrijs2005/exactauth/internal/server/backends"
	"github.com/dmitrijs2005/exactauth/internal/server/config"
	gs "github.com/dmitrijs2005/exactauth/internal/server/grpc"
	"github.com/dmitrijs2005/exactauth/internal/server/httpapi"
	"github.com/dmitrijs2005/exactauth/internal/server/metrics"
	"github.com/dmitrijs2005/exactauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/exactauth/internal/server/services"
	"golang.org/x/sync/errgroup"
)

// Core is everything below the transports. accountctl uses it directly.
type Core struct {
	DB          *sql.DB
	RepoManager repomanager.RepositoryManager
	Hasher      password.Config
	Chain       *backends.Chain
	Metrics     *metrics.Metrics
	Accounts    *services.AccountService
	Auth        *services.AuthService
}

// NewCore opens the database, applies migrations when migrate is set and
// builds the configured verifier chain.
func NewCore(ctx context.Context, c *config.Config, logger logging.Logger, migrate bool) (*Core, error) {
	hasher := c.PasswordConfig()
	if err := hasher.Check(); err != nil {
		return nil, err
	}

	rm, err := repomanager.New(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := dbx.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if migrate {
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	chain, err := backends.NewRegistry().Build(c.AuthBackends, backends.Deps{DB: db, RepoManager: rm, Hasher: hasher})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	mt := metrics.New()
	return &Core{
		DB:          db,
		RepoManager: rm,
		Hasher:      hasher,
		Chain:       chain,
		Metrics:     mt,
		Accounts:    services.NewAccountService(db, rm, hasher, mt, logger),
		Auth:        services.NewAuthService(db, rm, chain, c, mt, logger),
	}, nil
}

func (c *Core) Close() error {
	return c.DB.Close()
}

type App struct {
	config *config.Config
	logger logging.Logger
	core   *Core
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.NewJSON(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, err
	}

	core, err := NewCore(ctx, c, logger, true)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "credential backends configured", "backends", core.Chain.Names())

	return &App{config: c, logger: logger, core: core}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves gRPC and HTTP until a signal arrives or one of them fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.core.Close()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.core.Accounts, app.core.Auth,
		app.core.Metrics, gs.Options{TLSCertFile: app.config.TLSCertFile, TLSKeyFile: app.config.TLSKeyFile})
	httpServer := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.core.Accounts, app.core.Auth,
		app.core.Metrics, httpapi.Options{
			TLSCertFile:        app.config.TLSCertFile,
			TLSKeyFile:         app.config.TLSKeyFile,
			CORSAllowedOrigins: app.config.CORSAllowedOrigins,
		})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return grpcServer.Run(gctx) })
	g.Go(func() error { return httpServer.Run(gctx) })

	err := g.Wait()
	app.logger.Info(ctx, "App stopped")
	return err
}
