package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/store/backend"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks bad invocations; Run maps it to exit code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// app carries what every subcommand needs once the root pre-run has opened
// config, logger and storage.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	slot    store.Slot
	store   *todo.Store

	// runTUI is swapped out in tests.
	runTUI func(*todo.Store, *zap.Logger) error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{v: config.New(), runTUI: tui.Run}
	return a.run(args, stdout, stderr)
}

func (a *app) run(args []string, stdout, stderr io.Writer) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	a.close()
	if err == nil {
		return exitOK
	}

	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		ui.Hint(stderr, "Run `todo --help` for usage.")
		return exitUsage
	}
	return exitError
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "A reorderable todo list for the terminal.",
		Long: `todo keeps an ordered list of todos with a collapsible completed section.

Run without arguments for the interactive list (drag with the mouse, or press m
and use the arrow keys). Every change is saved immediately.`,
		Example: `  todo add "Buy milk"
  todo ls --group
  todo done 2
  todo mv 3 1
  todo rm 3`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(a.store, a.log)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: .tada.yaml in ./ or ~/.tada)")
	pf.String("backend", "", "storage backend: file, diskv or sqlite")
	pf.String("data-dir", "", "directory holding the todo data (default ~/.tada)")
	pf.String("key", "", "storage slot name (default todos)")
	pf.String("log-file", "", "log file (default ~/.tada/tada.log)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.String("theme", "", "colour theme: classic, neon or mono")
	pf.Bool("no-color", false, "disable colours")
	for key, flag := range map[string]string{
		config.KeyBackend: "backend",
		config.KeyDataDir: "data-dir",
		config.KeySlot:    "key",
		config.KeyLogFile: "log-file",
		config.KeyVerbose: "verbose",
		config.KeyTheme:   "theme",
		config.KeyNoColor: "no-color",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		a.addCmd(),
		a.listCmd(),
		a.toggleCmd(),
		a.removeCmd(),
		a.moveCmd(),
		a.exportCmd(),
	)
	return root
}

func (a *app) open() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorForcing(false, cfg.UI.NoColor)

	a.log, err = logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.log = a.log.Named("cli")
	a.log.Debug("config resolved",
		zap.String("file", cfg.File),
		zap.String("backend", cfg.Storage.Backend),
		zap.String("dir", cfg.Storage.Dir),
		zap.String("key", cfg.Storage.Key))

	a.slot, err = backend.Open(cfg.Storage)
	if err != nil {
		return err
	}
	adapter, err := store.NewAdapter(a.slot, cfg.Storage.Key, a.log)
	if err != nil {
		return err
	}
	a.store = todo.Open(adapter, a.log)
	return nil
}

func (a *app) close() {
	if a.slot != nil {
		if err := a.slot.Close(); err != nil {
			a.log.Warn("close storage", zap.Error(err))
		}
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}
