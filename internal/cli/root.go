package cli

import (
	"fmt"
	"os"
	"strings"

	"savanna-cli/internal/format"
	"savanna-cli/internal/logging"
	"savanna-cli/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Dir        string
	Workspace  string
	Backend    string
	PrettyJSON bool
	Format     string

	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "savanna",
		Short:        "Savanna Sea cart and booking CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  savanna

  # Scriptable cart commands
  savanna cart add-food "Jollof Rice" 10.00
  savanna cart book-safari --guests 3 --date "Oct 24"
  savanna checkout --pretty
  savanna cart confirm
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if _, err := format.Normalize(app.Format); err != nil {
			return writeErr(cmd, err)
		}
		return nil
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if app.log != nil {
			_ = app.log.Sync()
		}
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("SAVANNA_DIR", ""), "Path to store dir (overrides workspace resolution)")
	cmd.PersistentFlags().StringVar(&app.Workspace, "workspace", envOr("SAVANNA_WORKSPACE", ""), "Workspace name (default: 'default')")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", envOr("SAVANNA_BACKEND", ""), "Store backend (file|sqlite; default from config, else file)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("SAVANNA_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newCartCmd(app))
	cmd.AddCommand(newCheckoutCmd(app))
	cmd.AddCommand(newCalendarCmd(app))
	cmd.AddCommand(newCatalogCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newDoctorCmd(app))

	return cmd
}

// loadStore resolves the workspace directory and backend:
// --dir, then --workspace, then the configured current workspace, then "default".
func loadStore(app *App) (store.Store, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return store.Store{}, fmt.Errorf("load config: %w", err)
	}

	dir := app.Dir
	if dir == "" {
		name := app.Workspace
		if name == "" {
			name = cfg.CurrentWorkspace
		}
		if name == "" {
			name = "default"
		}
		d, err := store.WorkspaceDir(name)
		if err != nil {
			return store.Store{}, err
		}
		app.Workspace = name
		dir = d
		app.Dir = dir
	}

	backendName := app.Backend
	if backendName == "" {
		backendName = cfg.Backend
	}
	backend, err := store.ParseBackend(backendName)
	if err != nil {
		return store.Store{}, err
	}

	if app.log == nil {
		l, err := logging.New(logging.FromEnv(dir))
		if err != nil {
			return store.Store{}, err
		}
		app.log = l
	}

	return store.Store{Dir: dir, Backend: backend, Log: app.log}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
