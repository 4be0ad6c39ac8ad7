package tui

import (
	"context"

	"savanna-cli/internal/sched"
	"savanna-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Run starts the interactive app and blocks until it exits.
//
// Timers fire on their own goroutines; their callbacks are sent to the
// program and executed inside Update, so widget state has a single writer.
func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference(opts.Glyphs)

	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if err := opts.Store.Ensure(); err != nil {
		return err
	}

	var p *tea.Program
	s := sched.New(sched.WithDispatch(func(fn func()) {
		p.Send(runTaskMsg{fn: fn})
	}))
	defer s.Stop()
	opts.Sched = s

	m := newAppModel(opts)
	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if w, err := store.NewWatcher(opts.Store.CartPath()); err != nil {
		opts.Log.Warn("cart watcher unavailable", zap.Error(err))
	} else {
		defer func() {
			_ = w.Close()
			<-w.Done()
		}()
		go w.Run(ctx)
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-w.C():
					p.Send(storeChangedMsg{})
				}
			}
		}()
	}

	_, err := p.Run()
	m.sess.Idle.Stop()
	m.saveState()
	return err
}
