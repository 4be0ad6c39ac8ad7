package cli

import (
	"fmt"

	"savanna-cli/internal/checkout"

	"github.com/spf13/cobra"
)

func newCheckoutCmd(app *App) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Show the checkout summary (rows, placeholders, totals)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			v := checkout.Build(env.store.Carts().Load(), env.pricing)
			if markdown {
				_, err := fmt.Fprint(cmd.OutOrStdout(), checkout.Markdown(v))
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": v})
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print the summary as markdown instead of structured output")
	return cmd
}
