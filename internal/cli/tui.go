package cli

import (
	"savanna-cli/internal/tui"
)

func runTUI(app *App) error {
	env, err := loadEnv(app)
	if err != nil {
		return err
	}
	glyphs := ""
	if env.cfg.TUI != nil {
		glyphs = env.cfg.TUI.Glyphs
	}
	return tui.Run(tui.Options{
		Store:      env.store,
		Catalog:    env.catalog,
		Pricing:    env.pricing,
		SafariRate: env.rate,
		Glyphs:     glyphs,
		Log:        app.log,
	})
}
