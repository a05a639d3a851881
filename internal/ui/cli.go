package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/timegrid/internal/app"
	"github.com/javiermolinar/timegrid/internal/config"
	"github.com/javiermolinar/timegrid/internal/db"
	"github.com/javiermolinar/timegrid/internal/logger"
	"github.com/javiermolinar/timegrid/internal/profile"
	"github.com/javiermolinar/timegrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// ErrLocked is returned by editing commands while the editor is locked.
var ErrLocked = errors.New("editing is locked (run 'timegrid unlock')")

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	ctrl    *app.Controller
	log     *log.Logger
	debug   bool // Enable debug logging
	noColor bool
}

// NewApp creates a new CLI application with the given config. Storage is
// opened on first use.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "timegrid",
		Short: "A weekly timetable for two overlapping study plans",
		Long: `Timegrid keeps a weekly timetable of subjects for two plans, the
regular schedule and the naesin (exam preparation) schedule, and shows
where they collide.

Run without arguments to open the grid editor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureController(cmd.Context()); err != nil {
				return err
			}
			return tui.Run(a.ctrl, tui.Options{
				Theme:  a.config.UI.Theme,
				Logger: a.log,
			})
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (mirrors the log to stderr)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.paintCmd())
	a.root.AddCommand(a.eraseCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.entriesCmd())
	a.root.AddCommand(a.conflictsCmd())
	a.root.AddCommand(a.resolveCmd())
	a.root.AddCommand(a.subjectsCmd())
	a.root.AddCommand(a.colorCmd())
	a.root.AddCommand(a.profileCmd())
	a.root.AddCommand(a.settingsCmd())
	a.root.AddCommand(a.lockCmd(true))
	a.root.AddCommand(a.lockCmd(false))
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "timegrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command line arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.ExecuteContext(context.Background())
}

// Close releases the storage, if it was opened.
func (a *App) Close() error {
	if a.ctrl == nil {
		return nil
	}
	return a.ctrl.Close()
}

// ensureController opens the logger, the store and the state.
func (a *App) ensureController(ctx context.Context) error {
	if a.ctrl != nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	lg, err := logger.New(logger.Config{
		Debug:  a.debug || a.config.Log.Debug,
		Dir:    a.config.Log.Dir,
		Stderr: a.root.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = lg

	store, err := db.Open(a.config.Storage.Backend, a.config.StoragePath())
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	ctrl, err := app.Open(ctx, store, settingsFromConfig(a.config), lg)
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("loading state: %w", err)
	}
	a.log.Debug("state loaded", "backend", a.config.Storage.Backend, "path", a.config.StoragePath())
	a.ctrl = ctrl
	return nil
}

// settingsFromConfig returns the settings a never saved state starts with.
func settingsFromConfig(cfg *config.Config) profile.Settings {
	s := profile.DefaultSettings()
	s.SlotMinutes = cfg.Schedule.SlotMinutes
	s.PreventOverlap = cfg.Schedule.PreventOverlap
	s.AutoColor = cfg.Schedule.AutoColor
	return s
}

// checkResult turns a suppressed or partially failed result into output.
func checkResult(cmd *cobra.Command, res app.Result) error {
	if res.Suppressed {
		return ErrLocked
	}
	if res.Warning != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s not saved: %v\n", formatWarning("warning:"), res.Warning)
	}
	return nil
}

// controllerRunE wraps a command body that needs the controller.
func (a *App) controllerRunE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.ensureController(cmd.Context()); err != nil {
			return err
		}
		return fn(cmd, args)
	}
}
