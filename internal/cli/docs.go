package cli

import (
	"fmt"
	"strings"

	"savanna-cli/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show usage guides (no topic lists them)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": docs.Topics()})
			}
			md, ok := docs.Get(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("docs topic", args[0]))
			}
			if render {
				r, err := glamour.NewTermRenderer(glamour.WithStandardStyle("dark"), glamour.WithWordWrap(80))
				if err != nil {
					return writeErr(cmd, err)
				}
				out, err := r.Render(md)
				if err != nil {
					return writeErr(cmd, err)
				}
				md = out
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(md, "\n"))
			return err
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")
	return cmd
}
