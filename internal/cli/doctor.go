package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the workspace for unreadable or inconsistent state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			r := s.Doctor()
			if err := writeOut(cmd, app, map[string]any{"data": r}); err != nil {
				return err
			}
			if r.HasErrors() {
				return errors.New("doctor found errors")
			}
			return nil
		},
	}
}
