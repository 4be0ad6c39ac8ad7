package cli

import (
	"errors"
	"strconv"
	"time"

	"savanna-cli/internal/checkout"
	"savanna-cli/internal/model"
	"savanna-cli/internal/shop"
	"savanna-cli/internal/widgets"

	"github.com/spf13/cobra"
)

func newCartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and change the cart",
	}

	cmd.AddCommand(newCartShowCmd(app))
	cmd.AddCommand(newCartAddFoodCmd(app))
	cmd.AddCommand(newCartAddSafariCmd(app))
	cmd.AddCommand(newCartBookSafariCmd(app))
	cmd.AddCommand(newCartConfirmCmd(app))
	cmd.AddCommand(newCartClearCmd(app))

	return cmd
}

func cartPayload(c *model.Cart, out *outcome) map[string]any {
	data := map[string]any{
		"cart":  c,
		"badge": checkout.BuildBadge(c),
	}
	if out != nil {
		data["toasts"] = out.Toasts
		if out.Next != "" {
			data["next"] = out.Next
		}
	}
	return data
}

func newCartShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart and the header badge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			c := env.store.Carts().Load()
			return writeOut(cmd, app, map[string]any{"data": cartPayload(c, nil)})
		},
	}
}

func newCartAddFoodCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-food <name> [price]",
		Short: "Add one unit of a food item (price defaults to the catalog price)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			name := args[0]
			var price string
			if len(args) == 2 {
				price = args[1]
			} else {
				f, ok := env.catalog.FindFood(name)
				if !ok {
					return writeErr(cmd, errNotFound("food item", name))
				}
				price = strconv.FormatFloat(f.Price, 'f', 2, 64)
			}

			out := &outcome{}
			m := env.manager(app, out, model.DefaultSafariGuests)
			line, err := m.AddFoodItem(name, price)
			if err != nil {
				return writeErr(cmd, err)
			}
			data := cartPayload(m.Cart(), out)
			data["item"] = line
			return writeOut(cmd, app, map[string]any{
				"data":   data,
				"_hints": []string{"savanna checkout", "savanna cart confirm"},
			})
		},
	}
}

func newCartAddSafariCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-safari <name> [price]",
		Short: "Append a safari listing booking (2 guests, Oct 5)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			name := args[0]
			var price string
			if len(args) == 2 {
				price = args[1]
			} else {
				s, ok := env.catalog.FindSafari(name)
				if !ok {
					return writeErr(cmd, errNotFound("safari listing", name))
				}
				price = strconv.FormatFloat(s.Price, 'f', 2, 64)
			}

			out := &outcome{}
			m := env.manager(app, out, model.DefaultSafariGuests)
			b, err := m.AppendSafariBooking(name, price)
			if err != nil {
				return writeErr(cmd, err)
			}
			data := cartPayload(m.Cart(), out)
			data["booking"] = b
			return writeOut(cmd, app, map[string]any{"data": data})
		},
	}
}

func newCartBookSafariCmd(app *App) *cobra.Command {
	var guests int
	var date string

	cmd := &cobra.Command{
		Use:   "book-safari [name]",
		Short: "Replace safari bookings with one booking of the featured safari",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if guests < widgets.MinGuests || guests > widgets.MaxGuests {
				return writeErr(cmd, rangeError{flag: "guests", val: guests, min: widgets.MinGuests, max: widgets.MaxGuests})
			}
			name := env.catalog.Safari.Featured.Name
			if len(args) == 1 {
				name = args[0]
			}
			if date == "" {
				date = widgets.NewCalendar(time.Now()).SelectedLabel()
			}

			out := &outcome{}
			m := env.manager(app, out, guests)
			b, err := m.SetSingleSafariBooking(name, date)
			if err != nil {
				return writeErr(cmd, err)
			}
			data := cartPayload(m.Cart(), out)
			data["booking"] = b
			return writeOut(cmd, app, map[string]any{"data": data})
		},
	}

	cmd.Flags().IntVar(&guests, "guests", widgets.DefaultGuests, "Number of guests (1-8)")
	cmd.Flags().StringVar(&date, "date", "", `Booking date label, e.g. "Oct 24" (default: today)`)
	return cmd
}

func newCartConfirmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm",
		Short: "Confirm the booking and empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := &outcome{}
			m := env.manager(app, out, model.DefaultSafariGuests)
			r, err := m.ConfirmBooking()
			if err != nil {
				if errors.Is(err, shop.ErrEmptyCart) && len(out.Toasts) > 0 {
					return writeErr(cmd, errors.New(out.Toasts[len(out.Toasts)-1]))
				}
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"receipt": r,
					"toasts":  out.Toasts,
					"next":    out.Next,
				},
			})
		},
	}
}

func newCartClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart without confirming",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			m := env.manager(app, &outcome{}, model.DefaultSafariGuests)
			if err := m.ClearCart(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cartPayload(m.Cart(), nil)})
		},
	}
}
