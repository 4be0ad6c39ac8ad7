package cli

import (
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the menu and safari listings",
	}

	var column string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List food items and safari listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			food := env.catalog.Food
			if column != "" {
				food = env.catalog.Column(column)
				if len(food) == 0 {
					return writeErr(cmd, errNotFound("menu column", column))
				}
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"food":       food,
					"featured":   env.catalog.Safari.Featured,
					"safari":     env.catalog.Safari.Listings,
					"safariRate": env.rate,
				},
			})
		},
	}
	listCmd.Flags().StringVar(&column, "column", "", "Only list one menu column (default|italian|african)")

	cmd.AddCommand(listCmd)
	return cmd
}
