package app

import (
	"context"
	"path/filepath"

	"github.com/dshills/stormcmd/internal/menu"
	"github.com/dshills/stormcmd/internal/watcher"
)

// Run reloads menu fragments as their files change until ctx is done. It
// returns immediately when watching is disabled. onChange, if non-nil,
// receives the composed template after each reload.
func (a *App) Run(ctx context.Context, onChange func([]menu.Item)) error {
	if !a.Config.Watch || len(a.Config.MenuPaths) == 0 {
		return nil
	}

	w, err := watcher.New()
	if err != nil {
		return &OperationError{Op: "watch", Err: err}
	}

	paths := make(map[string]string, len(a.Config.MenuPaths))
	for _, path := range a.Config.MenuPaths {
		abs, err := filepath.Abs(path)
		if err != nil {
			_ = w.Close()
			return &OperationError{Op: "watch", Path: path, Err: err}
		}
		if err := w.Watch(abs); err != nil {
			_ = w.Close()
			return &OperationError{Op: "watch", Path: path, Err: err}
		}
		paths[abs] = path
	}

	events := watcher.NewDebouncer(w, a.Config.Debounce.Std())
	defer events.Close()

	a.Logger.Info("watching menus", "files", len(paths), "debounce", a.Config.Debounce)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events.Events():
			if !ok {
				return nil
			}
			path, known := paths[ev.Path]
			if !known {
				continue
			}
			a.reload(path, ev)
			if onChange != nil {
				onChange(a.MenuTemplate())
			}

		case err, ok := <-events.Errors():
			if !ok {
				return nil
			}
			a.Logger.Warn("watch error", "err", err)
		}
	}
}

func (a *App) reload(path string, ev watcher.Event) {
	a.Logger.Debug("menu changed", "path", path, "op", ev.Op)

	err := a.LoadMenu(path)
	switch {
	case err == nil:
	case isNotFound(err):
		a.Logger.Info("menu removed", "path", path)
	default:
		a.Logger.Error("menu reload failed", "path", path, "err", err)
	}
}
