package cli

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	var limit int
	var human bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List cart events (oldest-first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			evs, err := s.ReadEvents(limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !human {
				return writeOut(cmd, app, map[string]any{"data": evs})
			}
			now := time.Now()
			rows := make([]map[string]any, 0, len(evs))
			for _, ev := range evs {
				rows = append(rows, map[string]any{
					"id":      ev.ID,
					"type":    ev.Type,
					"ts":      ev.TS,
					"age":     humanize.RelTime(ev.TS, now, "ago", "from now"),
					"payload": ev.Payload,
				})
			}
			return writeOut(cmd, app, map[string]any{"data": rows})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 200, "Max events to return (0 = all)")
	cmd.Flags().BoolVar(&human, "human", false, "Add a relative age to each event")
	return cmd
}
