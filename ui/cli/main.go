// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Harisproject21/Pendataan-Akun/buildvars"
	"github.com/Harisproject21/Pendataan-Akun/internal/config"
	"github.com/Harisproject21/Pendataan-Akun/internal/core"
	"github.com/Harisproject21/Pendataan-Akun/internal/db"
	"github.com/Harisproject21/Pendataan-Akun/internal/i18n"
	"github.com/Harisproject21/Pendataan-Akun/internal/logging"
	"github.com/Harisproject21/Pendataan-Akun/internal/tui"
)

const modulePath = "github.com/Harisproject21/Pendataan-Akun"

var version = "dev"   // set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// now is the clock used for ids and readiness; tests pin it.
var now = time.Now

// isTerminal reports whether fd is an interactive terminal; tests stub it.
var isTerminal = func(fd int) bool { return term.IsTerminal(fd) }

// runTUI starts the interactive interface; tests stub it.
var runTUI = tui.Run

// app holds the services shared by the commands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg     config.Config
	port    db.Store
	store   *core.AccountStore
	session *core.Session
	// loadWarning is set when the snapshot could not be read.
	loadWarning error
}

// setupDefaultServices loads the configuration, opens the persistence port
// and loads the collection.
func (a *app) setupDefaultServices(cmd *cobra.Command, args []string) error {
	logging.SetDebug(a.verbose)

	var cfgPath *string
	if cmd.Flags().Changed("config") && a.cfgFile != "" {
		if _, err := os.Stat(a.cfgFile); err != nil {
			return fmt.Errorf("config file specified via --config not accessible: %w", err)
		}
		cfgPath = &a.cfgFile
	}

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), cfgPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg

	// First run: persist the defaults so users have a file to edit.
	if cfgPath == nil && !config.Exists(false) && !config.Exists(true) {
		def := config.DefaultConfig()
		if err := config.WriteConfigFile(&def, false); err != nil {
			logging.Warnf("could not write default config file: %v", err)
		} else {
			logging.Debugf("wrote default config to user config path")
		}
	}

	i18n.Init(a.cfg.Language)

	port, err := db.NewPort(a.cfg.Storage.Type, a.cfg.Storage.Dsn)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	a.port = port
	a.store = core.NewAccountStore(port, core.WithClock(now))
	a.session = core.NewSession(a.store, core.WithSessionClock(now))

	if _, err := a.store.Load(cmd.Context()); err != nil {
		if !errors.Is(err, core.ErrPersistenceCorrupt) {
			_ = port.Close()
			return err
		}
		// Start empty; the rejected data was copied aside, or saving is held.
		a.loadWarning = err
		fmt.Fprintln(cmd.ErrOrStderr(), a.loadNotice())
	}
	return nil
}

// loadNotice describes a rejected snapshot for the user.
func (a *app) loadNotice() string {
	if a.store.Held() {
		return i18n.T("error.held", a.loadWarning)
	}
	return i18n.T("error.corrupt", a.loadWarning)
}

func (a *app) close() error {
	if a.port == nil {
		return nil
	}
	err := a.port.Close()
	a.port = nil
	return err
}

// NewRootCmd creates the root command with all subcommands. Each call
// returns an independent tree, which keeps tests isolated.
func NewRootCmd() *cobra.Command {
	a := &app{}
	def := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "pendataan-akun",
		Short: "Track Gmail accounts and when they can be used again",
		Long: `Pendataan Akun keeps a list of Gmail accounts together with the date each
one was last used. An account becomes ready to be reused 15 days after
that date.

Running without a subcommand launches the interactive TUI.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setupDefaultServices,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return a.close() },
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(int(os.Stdout.Fd())) {
				return listAccounts(cmd, a.session)
			}
			opts := tui.Options{ExportDir: a.cfg.Export.Dir}
			if a.loadWarning != nil {
				opts.Notice = a.loadNotice()
			}
			return runTUI(a.session, opts)
		},
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: pendataan-akun.yaml in the user config dir)")
	cmd.PersistentFlags().String("storage.type", def.Storage.Type, "Storage backend: json, sqlite, postgres, mysql or memory")
	cmd.PersistentFlags().String("storage.dsn", def.Storage.Dsn, "Snapshot file path (json) or database DSN")
	cmd.PersistentFlags().String("export.dir", def.Export.Dir, "Directory that receives akun_gmail.csv")
	cmd.PersistentFlags().String("language", def.Language, `Interface language ("en", "id")`)

	cmd.AddCommand(
		newAddCmd(a),
		newDeleteCmd(a),
		newListCmd(a),
		newExportCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
		newMigrateCmd(a),
		newDBMaintainCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the CLI entrypoint. main should call this and handle the
// process exit.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// No storage is needed to print the version.
		PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our version as a dependency.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep != nil && dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
