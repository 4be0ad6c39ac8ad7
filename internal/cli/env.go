package cli

import (
	"savanna-cli/internal/catalog"
	"savanna-cli/internal/model"
	"savanna-cli/internal/shop"
	"savanna-cli/internal/store"
)

// shopEnv is everything a cart command needs, resolved once per invocation.
type shopEnv struct {
	store   store.Store
	cfg     *store.GlobalConfig
	catalog *catalog.Catalog
	pricing model.Pricing
	rate    float64
}

func loadEnv(app *App) (*shopEnv, error) {
	st, err := loadStore(app)
	if err != nil {
		return nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	pricing, rate := resolvePricing(cfg, cat)
	return &shopEnv{store: st, cfg: cfg, catalog: cat, pricing: pricing, rate: rate}, nil
}

// resolvePricing applies config overrides on top of the built-in rates.
func resolvePricing(cfg *store.GlobalConfig, cat *catalog.Catalog) (model.Pricing, float64) {
	p := model.DefaultPricing()
	rate := cat.Safari.Featured.Rate
	if cfg != nil && cfg.Pricing != nil {
		if cfg.Pricing.TaxRate > 0 {
			p.TaxRate = cfg.Pricing.TaxRate
		}
		if cfg.Pricing.DeliveryFee > 0 {
			p.DeliveryFee = cfg.Pricing.DeliveryFee
		}
		if cfg.Pricing.SafariRate > 0 {
			rate = cfg.Pricing.SafariRate
		}
	}
	return p, rate
}

// outcome collects what the manager would have shown or done in the TUI.
type outcome struct {
	Toasts []string `json:"toasts"`
	Next   string   `json:"next,omitempty"`
}

func (o *outcome) Notify(msg string) { o.Toasts = append(o.Toasts, msg) }

func (e *shopEnv) manager(app *App, out *outcome, guests int) *shop.Manager {
	return &shop.Manager{
		Store:      e.store.Carts(),
		Events:     e.store,
		Notify:     out,
		Log:        app.log,
		Pricing:    e.pricing,
		SafariRate: e.rate,
		Guests:     func() int { return guests },
		Navigate:   func(page string) { out.Next = page },
	}
}
