package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todocal/internal/api"
	"github.com/sandeepkv93/todocal/internal/config"
	"github.com/sandeepkv93/todocal/internal/controller"
	"github.com/sandeepkv93/todocal/internal/i18n"
	"github.com/sandeepkv93/todocal/internal/session"
	"github.com/sandeepkv93/todocal/internal/storage"
	"github.com/sandeepkv93/todocal/internal/update"
	"github.com/spf13/cobra"
)

// ErrNotSignedIn is returned by data commands when no valid session exists.
var ErrNotSignedIn = errors.New("cli: not signed in")

type App struct {
	Config config.RuntimeConfig
	JSON   bool

	logger    *log.Logger
	logFile   io.Closer
	store     *storage.SQLiteStore
	client    *api.Client
	session   *session.Manager
	resources *controller.Controller
	catalog   *i18n.Catalog
	in        *bufio.Reader
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{Config: config.FromEnv(config.Default())})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todocal",
		Short:         "Terminal client for the todo and calendar API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todocal

  # Scriptable commands
  todocal login --email ada@example.com
  todocal todos add "Pay rent" --priority high --due 2026-03-01
  todocal events list --json
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.open()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.Config.APIURL, "api", app.Config.APIURL, "API base URL (env TODOCAL_API_URL)")
	flags.StringVar(&app.Config.StateDBPath, "state-db", app.Config.StateDBPath, "SQLite file holding the session token (env TODOCAL_STATE_DB)")
	flags.StringVar(&app.Config.Locale, "locale", app.Config.Locale, "UI language: en or tr (env TODOCAL_LOCALE)")
	flags.StringVar(&app.Config.LogFile, "log-file", app.Config.LogFile, "Diagnostic log file, - to discard (env TODOCAL_LOG_FILE)")
	flags.BoolVar(&app.JSON, "json", false, "Print JSON instead of tables")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newTodosCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newStatsCmd(app))

	closeAfterRun(cmd, app)
	return cmd
}

// closeAfterRun wraps every RunE in the tree so the store and log file are
// released when RunE fails; cobra skips post-run hooks then.
func closeAfterRun(c *cobra.Command, app *App) {
	if run := c.RunE; run != nil {
		c.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if cerr := app.close(); err == nil {
					err = cerr
				}
			}()
			return run(cmd, args)
		}
	}
	for _, sub := range c.Commands() {
		closeAfterRun(sub, app)
	}
}

func (app *App) open() error {
	app.logger = log.New(io.Discard, "", 0)
	if !app.Config.LogDiscarded() {
		f, err := os.OpenFile(app.Config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		app.logFile = f
		app.logger = log.New(f, "todocal ", log.LstdFlags|log.Lmicroseconds)
	}

	store, err := storage.OpenSQLite(app.Config.StateDBPath)
	if err != nil {
		return errors.Join(fmt.Errorf("open state db: %w", err), app.close())
	}
	app.store = store
	app.catalog = i18n.New(app.Config.Locale)
	app.client = api.NewClient(app.Config.APIURL,
		api.WithTimeout(app.Config.HTTPTimeout()),
		api.WithLogger(app.logger),
	)
	app.session = session.NewManager(app.client, app.store, app.logger)
	app.resources = controller.New(app.client, app.logger)
	return nil
}

func (app *App) close() error {
	var errs []error
	if app.store != nil {
		errs = append(errs, app.store.Close())
		app.store = nil
	}
	if app.logFile != nil {
		errs = append(errs, app.logFile.Close())
		app.logFile = nil
	}
	return errors.Join(errs...)
}

func runTUI(cmd *cobra.Command, app *App) error {
	m := update.NewModel(update.Deps{
		Session:     app.session,
		Resources:   app.resources,
		Catalog:     app.catalog,
		Logger:      app.logger,
		NotifyDelay: app.Config.NotifyDelay(),
		Context:     cmd.Context(),
	})
	opts := []tea.ProgramOption{tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout())}
	if app.Config.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return writeErr(cmd, fmt.Errorf("tui: %w", err))
	}
	return nil
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

// fail reports err in the user's language and returns it for the exit code.
func (app *App) fail(cmd *cobra.Command, err error, fallbackID string) error {
	fmt.Fprintln(cmd.ErrOrStderr(), update.Describe(app.catalog, err, fallbackID))
	return err
}
