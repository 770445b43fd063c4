// Package accountctl is the account administration command line. It works
// directly on the account store configured for the server.
package accountctl

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/exactauth/internal/logging"
	"github.com/dmitrijs2005/exactauth/internal/server"
	"github.com/dmitrijs2005/exactauth/internal/server/backup"
	"github.com/dmitrijs2005/exactauth/internal/server/config"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
	"github.com/spf13/cobra"
)

var (
	openCore    = server.NewCore
	newExporter = func(cfg backup.Config, l logging.Logger) exporter { return backup.NewExporter(cfg, l) }
)

type exporter interface {
	Export(ctx context.Context, accounts []*models.Account) (*backup.Result, error)
}

type options struct {
	configPath    string
	driver        string
	dsn           string
	logLevel      string
	passwordStdin bool
}

// Execute runs accountctl with os.Args and returns the process exit code.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "accountctl",
		Short:         "Manage exactauth accounts",
		Long:          "Create, inspect and maintain exactauth accounts directly in the account store. Identifiers are used exactly as typed.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "JSON configuration file")
	pf.StringVar(&opts.driver, "driver", "", "database driver (pgx or sqlite)")
	pf.StringVar(&opts.dsn, "dsn", "", "database DSN")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	pf.BoolVar(&opts.passwordStdin, "password-stdin", false, "read the password from the first line of stdin")

	root.AddCommand(
		newCreateCmd(opts, false),
		newCreateCmd(opts, true),
		newSetPasswordCmd(opts),
		newSetFlagsCmd(opts),
		newDeleteCmd(opts),
		newListCmd(opts),
		newCheckCmd(opts),
		newMigrateCmd(opts),
		newBackupCmd(opts),
		newInspectBackupCmd(opts),
	)
	return root
}

// loadConfig applies defaults, the --config file, the environment and the
// --driver/--dsn flags, in that order.
func (o *options) loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	if o.configPath != "" {
		if err := config.LoadFile(cfg, o.configPath); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if o.driver != "" {
		cfg.DatabaseDriver = o.driver
	}
	if o.dsn != "" {
		cfg.DatabaseDSN = o.dsn
	}
	return cfg, nil
}

func (o *options) logger(w io.Writer) (logging.Logger, error) {
	return logging.NewJSON(w, o.logLevel)
}

// withCore loads the configuration, opens the store and applies pending
// migrations before running fn.
func (o *options) withCore(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, core *server.Core, log logging.Logger) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	log, err := o.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	core, err := openCore(ctx, cfg, log, true)
	if err != nil {
		return err
	}
	defer core.Close()
	return fn(ctx, cfg, core, log)
}
