package cli

import (
	"fmt"
	"time"

	"savanna-cli/internal/widgets"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func newCalendarCmd(app *App) *cobra.Command {
	var from, sel string
	var weeks int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a 7-day booking window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			cal := widgets.NewCalendar(now)
			if from != "" {
				d, err := time.ParseInLocation(dateLayout, from, time.Local)
				if err != nil {
					return writeErr(cmd, fmt.Errorf("invalid --from (want YYYY-MM-DD): %w", err))
				}
				cal.ViewDate = d
			}
			if sel != "" {
				d, err := time.ParseInLocation(dateLayout, sel, time.Local)
				if err != nil {
					return writeErr(cmd, fmt.Errorf("invalid --select (want YYYY-MM-DD): %w", err))
				}
				cal.Select(d)
			}
			for ; weeks > 0; weeks-- {
				cal.Next()
			}
			for ; weeks < 0; weeks++ {
				cal.Prev()
			}
			return writeOut(cmd, app, map[string]any{"data": calendarPayload(cal, now)})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day of the window (YYYY-MM-DD; default today)")
	cmd.Flags().StringVar(&sel, "select", "", "Selected date (YYYY-MM-DD; default today)")
	cmd.Flags().IntVar(&weeks, "weeks", 0, "Shift the window by N weeks (negative goes back)")
	return cmd
}

type calendarDay struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Day     int    `json:"day"`
	State   string `json:"state"`
}

func calendarPayload(cal *widgets.Calendar, now time.Time) map[string]any {
	days := []calendarDay{}
	for _, c := range cal.Days(now) {
		days = append(days, calendarDay{
			Date:    c.Date.Format(dateLayout),
			Weekday: c.Weekday,
			Day:     c.Day,
			State:   c.State.String(),
		})
	}
	return map[string]any{
		"header":   cal.Header(),
		"selected": cal.SelectedLabel(),
		"days":     days,
	}
}
