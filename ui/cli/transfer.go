// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Harisproject21/Pendataan-Akun/internal/backup"
	"github.com/Harisproject21/Pendataan-Akun/internal/db"
	"github.com/Harisproject21/Pendataan-Akun/internal/export"
	"github.com/Harisproject21/Pendataan-Akun/internal/i18n"
	"github.com/Harisproject21/Pendataan-Akun/internal/logging"
)

func newExportCmd(a *app) *cobra.Command {
	var toStdout bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all accounts as CSV",
		Long: `Writes every account, ignoring any search or filter, to akun_gmail.csv in
the configured export directory. Fields are written verbatim.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := a.session.ExportCSV()
			if toStdout {
				return export.ToWriter(cmd.OutOrStdout(), payload+"\n")
			}
			path, err := export.ToDir(a.cfg.Export.Dir, payload)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("msg.exported", a.store.Len(), path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the CSV to standard output instead of a file")
	return cmd
}

func newBackupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output-file]",
		Short: "Write a compressed backup of all accounts",
		Long: `Writes all accounts to a zstd-compressed JSON file. Without an argument the
file is named pendataan-akun-backup-YYYY-MM-DD.json.zst.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := backup.New(a.store.Accounts(), now())
			filename := backup.DefaultFilename(now())
			if len(args) > 0 {
				filename = backup.WithExt(args[0])
			}
			if err := backup.WriteFile(filename, data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("msg.backup_written", len(data.Accounts), filename))
			return nil
		},
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Replace all accounts with the contents of a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := backup.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := a.store.Replace(cmd.Context(), data.Accounts); err != nil {
				return fmt.Errorf("restore %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("msg.restored", len(data.Accounts), args[0]))
			return nil
		},
	}
}

func newMigrateCmd(a *app) *cobra.Command {
	var toType, toDsn string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy all accounts to another storage backend",
		Long: `Copies the current collection, in order and with its ids, to the storage
named by --to.type and --to.dsn. The target's previous contents are replaced.`,
		Example: `  pendataan-akun migrate --to.type sqlite --to.dsn ./accounts.db`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if toType == "" || toDsn == "" {
				return fmt.Errorf("--to.type and --to.dsn are required")
			}
			target, err := db.NewPort(toType, toDsn)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := target.Close(); cerr != nil {
					logging.Warnf("closing target storage: %v", cerr)
				}
			}()

			accounts := a.store.Accounts()
			if err := target.Save(cmd.Context(), accounts); err != nil {
				return fmt.Errorf("migrate to %s: %w", toType, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.migrated", len(accounts), strings.ToLower(toType)))
			return nil
		},
	}
	cmd.Flags().StringVar(&toType, "to.type", "", "Target storage type")
	cmd.Flags().StringVar(&toDsn, "to.dsn", "", "Target snapshot path or DSN")
	return cmd
}

func newDBMaintainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "db-maintain",
		Short: "Run database maintenance for SQL storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := strings.ToLower(strings.TrimSpace(a.cfg.Storage.Type))
			if !db.IsSQL(t) {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.maintenance_skipped", t))
				return nil
			}
			// Release our own connection first; sqlite VACUUM needs the file to itself.
			if err := a.close(); err != nil {
				return err
			}
			if err := db.RunDBMaintenance(cmd.Context(), t, a.cfg.Storage.Dsn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.maintenance_done", t))
			return nil
		},
	}
}
