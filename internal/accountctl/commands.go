package accountctl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/exactauth/internal/common"
	"github.com/dmitrijs2005/exactauth/internal/logging"
	"github.com/dmitrijs2005/exactauth/internal/security/password"
	"github.com/dmitrijs2005/exactauth/internal/server"
	"github.com/dmitrijs2005/exactauth/internal/server/backup"
	"github.com/dmitrijs2005/exactauth/internal/server/config"
	"github.com/dmitrijs2005/exactauth/internal/server/services"
	"github.com/spf13/cobra"
)

// errCheckFailed is returned by check so the exit code is non-zero. It does
// not say why.
var errCheckFailed = errors.New("authentication failed")

func newCreateCmd(opts *options, privileged bool) *cobra.Command {
	var noPassword, staff, inactive bool

	use, short := "create <identifier>", "Create a regular account"
	if privileged {
		use, short = "createsuperuser <identifier>", "Create an account with is_staff and is_superuser set"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identifier := args[0]
			secret := ""
			if !noPassword {
				var err error
				if secret, err = opts.readSecret(cmd); err != nil {
					return err
				}
			}

			return opts.withCore(cmd, func(ctx context.Context, _ *config.Config, core *server.Core, _ logging.Logger) error {
				flags := services.Flags{}
				if inactive {
					flags.IsActive = services.Bool(false)
				}
				var err error
				if privileged {
					_, err = core.Accounts.CreatePrivilegedAccount(ctx, identifier, secret, flags)
				} else {
					if staff {
						flags.IsStaff = services.Bool(true)
					}
					_, err = core.Accounts.CreateAccount(ctx, identifier, secret, flags)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %q\n", identifier)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&noPassword, "no-password", false, "store an unusable password")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "create the account inactive")
	if !privileged {
		cmd.Flags().BoolVar(&staff, "staff", false, "set is_staff")
	}
	return cmd
}

func newSetPasswordCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "setpassword <identifier>",
		Short: "Replace an account's password and revoke its refresh tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := opts.readSecret(cmd)
			if err != nil {
				return err
			}
			return opts.withCore(cmd, func(ctx context.Context, _ *config.Config, core *server.Core, _ logging.Logger) error {
				if err := core.Accounts.SetPassword(ctx, args[0], secret); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "password changed for %q\n", args[0])
				return nil
			})
		},
	}
}

func newSetFlagsCmd(opts *options) *cobra.Command {
	var staff, superuser, active bool

	cmd := &cobra.Command{
		Use:   "setflags <identifier>",
		Short: "Change is_staff, is_superuser or is_active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := services.Flags{}
			if cmd.Flags().Changed("staff") {
				flags.IsStaff = services.Bool(staff)
			}
			if cmd.Flags().Changed("superuser") {
				flags.IsSuperuser = services.Bool(superuser)
			}
			if cmd.Flags().Changed("active") {
				flags.IsActive = services.Bool(active)
			}
			if flags == (services.Flags{}) {
				return errors.New("nothing to change; pass --staff, --superuser or --active")
			}

			return opts.withCore(cmd, func(ctx context.Context, _ *config.Config, core *server.Core, _ logging.Logger) error {
				acc, err := core.Accounts.SetFlags(ctx, args[0], flags)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%q staff=%t superuser=%t active=%t\n",
					acc.Identifier, acc.IsStaff, acc.IsSuperuser, acc.IsActive)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&staff, "staff", false, "is_staff")
	cmd.Flags().BoolVar(&superuser, "superuser", false, "is_superuser")
	cmd.Flags().BoolVar(&active, "active", true, "is_active")
	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <identifier>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withCore(cmd, func(ctx context.Context, _ *config.Config, core *server.Core, _ logging.Logger) error {
				if err := core.Accounts.DeleteAccount(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", args[0])
				return nil
			})
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts in byte order of their identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withCore(cmd, func(ctx context.Context, _ *config.Config, core *server.Core, _ logging.Logger) error {
				list, err := core.Accounts.ListAccounts(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "IDENTIFIER\tSTAFF\tSUPERUSER\tACTIVE\tUSABLE PASSWORD\tID")
				for _, a := range list {
					fmt.Fprintf(tw, "%q\t%t\t%t\t%t\t%t\t%s\n",
						a.Identifier, a.IsStaff, a.IsSuperuser, a.IsActive, password.IsUsable(a.PasswordHash), a.ID)
				}
				return tw.Flush()
			})
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <identifier>",
		Short: "Verify a password through the configured credential backends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := opts.readCheckSecret(cmd)
			if err != nil {
				return err
			}
			return opts.withCore(cmd, func(ctx context.Context, _ *config.Config, core *server.Core, _ logging.Logger) error {
				acc, err := core.Auth.Authenticate(ctx, args[0], secret)
				if err != nil {
					if errors.Is(err, common.ErrorUnauthorized) {
						return errCheckFailed
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", acc.ID)
				return nil
			})
		},
	}
}

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withCore(cmd, func(ctx context.Context, cfg *config.Config, _ *server.Core, _ logging.Logger) error {
				fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", cfg.DatabaseDriver)
				return nil
			})
		},
	}
}

func newBackupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload a JSON snapshot of all accounts to the configured S3 bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withCore(cmd, func(ctx context.Context, cfg *config.Config, core *server.Core, log logging.Logger) error {
				list, err := core.Accounts.ListAccounts(ctx)
				if err != nil {
					return err
				}
				res, err := newExporter(backup.ConfigFrom(cfg), log).Export(ctx, list)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d accounts to s3://%s/%s\n", res.Count, cfg.S3Bucket, res.Key)
				if res.DownloadURL != "" {
					fmt.Fprintln(cmd.OutOrStdout(), res.DownloadURL)
				}
				return nil
			})
		},
	}
}

// newInspectBackupCmd reads a downloaded snapshot file. Files ending in
// backup.SealedSuffix are opened with the configured backup passphrase.
func newInspectBackupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect-backup <file>",
		Short: "Print the accounts contained in a downloaded snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			body, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			passphrase := ""
			if strings.HasSuffix(args[0], backup.SealedSuffix) {
				if cfg.BackupPassphrase == "" {
					return errors.New("snapshot is encrypted but no backup passphrase is configured")
				}
				passphrase = cfg.BackupPassphrase
			}

			snap, err := backup.Decode(body, passphrase)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "generated %s, %d accounts\n", snap.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"), snap.Count)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "IDENTIFIER\tSTAFF\tSUPERUSER\tACTIVE\tUSABLE PASSWORD\tID")
			for _, r := range snap.Accounts {
				fmt.Fprintf(tw, "%q\t%t\t%t\t%t\t%t\t%s\n",
					r.Identifier, r.IsStaff, r.IsSuperuser, r.IsActive, password.IsUsable(r.PasswordHash), r.ID)
			}
			return tw.Flush()
		},
	}
}
