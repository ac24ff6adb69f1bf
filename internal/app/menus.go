package app

import (
	"errors"
	"strings"

	"github.com/dshills/stormcmd/internal/config/loader"
	"github.com/dshills/stormcmd/internal/keystroke"
	"github.com/dshills/stormcmd/internal/menu"
)

// LoadMenus loads every configured menu fragment in order. It stops at the
// first failure.
func (a *App) LoadMenus() error {
	for _, path := range a.Config.MenuPaths {
		if err := a.LoadMenu(path); err != nil {
			return err
		}
	}
	return nil
}

// LoadMenu merges the fragment at path. A fragment loaded earlier from the
// same path is unmerged first, so reloading a changed file replaces its
// items. A missing or invalid file leaves the fragment unmerged.
func (a *App) LoadMenu(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}

	if old, ok := a.contributions[path]; ok {
		old.Dispose()
		delete(a.contributions, path)
	}

	t, err := a.readTemplate(path)
	if err != nil {
		return &OperationError{Op: "load menu", Path: path, Err: err}
	}

	c := a.Menus.AddTemplate(t)
	a.contributions[path] = c
	a.Logger.Info("menu loaded", "path", path, "items", len(t.Items), "contribution", c.ID())
	return nil
}

// UnloadMenu unmerges the fragment loaded from path, if any.
func (a *App) UnloadMenu(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if c, ok := a.contributions[path]; ok {
		c.Dispose()
		delete(a.contributions, path)
	}
}

func (a *App) readTemplate(path string) (menu.Template, error) {
	l, err := loader.ForPathWithFS(a.fs, path)
	if err != nil {
		return menu.Template{}, err
	}
	doc, err := l.Load()
	if err != nil {
		return menu.Template{}, err
	}
	if doc == nil {
		return menu.Template{}, ErrMenuNotFound
	}
	return menu.ParseTemplate(doc)
}

// MenuTemplate returns the composed menu with accelerators filled in from
// the keymap for items that bind a command and carry none.
func (a *App) MenuTemplate() []menu.Item {
	items := a.Menus.Template()
	a.applyAccelerators(items)
	return items
}

func (a *App) applyAccelerators(items []menu.Item) {
	for i := range items {
		it := &items[i]
		if it.Accelerator == "" && it.Command != "" {
			ks := a.Config.Keymap[it.Command]
			// Native menus cannot show multi-stroke bindings.
			if ks != "" && !strings.Contains(strings.TrimSpace(ks), " ") {
				it.Accelerator = keystroke.Accelerator(strings.TrimSpace(ks))
			}
		}
		if it.Submenu != nil {
			a.applyAccelerators(it.Submenu)
		}
	}
}

// isNotFound reports whether err means the fragment file is gone.
func isNotFound(err error) bool {
	return errors.Is(err, ErrMenuNotFound)
}
