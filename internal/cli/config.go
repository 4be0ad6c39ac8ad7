package cli

import (
	"savanna-cli/internal/store"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change global settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the global config and the resolved workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			workspaces, err := store.ListWorkspaces()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"path":       path,
					"config":     cfg,
					"workspace":  app.Workspace,
					"dir":        s.Dir,
					"backend":    s.Backend,
					"workspaces": workspaces,
				},
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-backend <file|sqlite>",
		Short: "Choose the default store backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := store.ParseBackend(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg.Backend = string(b)
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"backend": b}})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "use-workspace <name>",
		Short: "Set the current workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := store.NormalizeWorkspaceName(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg.CurrentWorkspace = name
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"workspace": name}})
		},
	})

	return cmd
}
