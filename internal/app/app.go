// Package app wires the command registry, the menu manager, the Lua plugin
// host and the element tree into one application.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/dshills/stormcmd/internal/command"
	"github.com/dshills/stormcmd/internal/config"
	"github.com/dshills/stormcmd/internal/config/loader"
	"github.com/dshills/stormcmd/internal/fuzzy"
	"github.com/dshills/stormcmd/internal/keystroke"
	"github.com/dshills/stormcmd/internal/menu"
	"github.com/dshills/stormcmd/internal/plugin/lua"
	"github.com/dshills/stormcmd/internal/widget"
)

// Built-in commands registered on the tree root.
const (
	CommandReloadMenus = "core:reload-menus"
)

// App is the composition root.
type App struct {
	Config   config.Config
	Logger   *log.Logger
	Commands *command.Registry
	Menus    *menu.Manager
	Plugins  *lua.Host

	// Tree is the root of the element chain built from Config.Tree.
	Tree *widget.Element
	leaf *widget.Element

	fs loader.FileSystem

	mu            sync.Mutex
	contributions map[string]*menu.Contribution
	builtins      []*command.Disposable
	closed        bool
}

// Option configures an App.
type Option func(*options)

type options struct {
	logger *log.Logger
	fs     loader.FileSystem
	seq    *command.Sequence
}

// WithLogger sets the root logger. Components log through sub-loggers with
// their own prefix.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFS reads menu fragments from fsys.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithSequence orders command bindings with seq instead of the shared
// sequence.
func WithSequence(seq *command.Sequence) Option {
	return func(o *options) {
		o.seq = seq
	}
}

// NewLogger builds the logger described by cfg, writing to w.
func NewLogger(cfg config.Config, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           cfg.Level(),
		Prefix:          "stormcmd",
		ReportTimestamp: cfg.Level() == log.DebugLevel,
	})
}

// New builds the tree, attaches its root to a fresh registry and registers
// the built-in commands.
func New(cfg config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{fs: loader.DefaultFS()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NewLogger(cfg, os.Stderr)
	}

	cmdConfig := command.DefaultConfig().WithLogger(o.logger.WithPrefix("command"))
	if o.seq != nil {
		cmdConfig = cmdConfig.WithSequence(o.seq)
	}
	commands := command.NewRegistry(cmdConfig)

	menus := menu.NewManager(
		menu.WithMenuOptions(menu.WithPlatform(cfg.Platform)),
		menu.WithLogger(o.logger.WithPrefix("menu")),
	)

	root, leaf := widget.Chain(cfg.Tree...)
	commands.Attach(root)

	a := &App{
		Config:        cfg,
		Logger:        o.logger,
		Commands:      commands,
		Menus:         menus,
		Plugins:       lua.NewHost(commands, menus, lua.WithLogger(o.logger.WithPrefix("plugin"))),
		Tree:          root,
		leaf:          leaf,
		fs:            o.fs,
		contributions: make(map[string]*menu.Contribution),
	}
	a.registerBuiltins()

	a.Logger.Debug("app ready", "tree", strings.Join(cfg.Tree, ">"), "platform", cfg.Platform)
	return a, nil
}

func (a *App) registerBuiltins() {
	a.builtins = append(a.builtins,
		a.Commands.Add(a.Tree.Tag(), CommandReloadMenus, command.Sync(func(command.Node, any) error {
			return a.LoadMenus()
		}), command.WithDescription("Reload menu fragments from disk")),
	)
}

// Target returns the element with the given tag, or the deepest element of
// the chain when tag is empty.
func (a *App) Target(tag string) (*widget.Element, error) {
	if tag == "" {
		return a.leaf, nil
	}
	if e := a.Tree.Find(tag); e != nil {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, tag)
}

// Dispatch runs commandName from the element tagged tag and waits for every
// handler. It reports false when no handler matched.
func (a *App) Dispatch(ctx context.Context, tag, commandName string, args any) (bool, error) {
	target, err := a.Target(tag)
	if err != nil {
		return false, err
	}

	agg := a.Commands.HandleCommand(target, commandName, args)
	if agg == nil {
		a.Logger.Info("command not handled", "command", commandName, "target", target.Tag())
		return false, nil
	}
	return true, agg.Wait(ctx)
}

// CommandEntry describes one command reachable from a target.
type CommandEntry struct {
	command.CommandInfo

	// Keystroke is the humanized keymap binding, or "".
	Keystroke string
}

// FindCommands lists the commands reachable from the element tagged tag.
func (a *App) FindCommands(tag string) ([]CommandEntry, error) {
	target, err := a.Target(tag)
	if err != nil {
		return nil, err
	}

	infos := a.Commands.FindCommands(target)
	entries := make([]CommandEntry, len(infos))
	for i, info := range infos {
		entries[i] = CommandEntry{CommandInfo: info}
		if ks := a.Config.Keymap[info.Name]; ks != "" {
			entries[i].Keystroke = keystroke.Humanize(ks, a.Config.Platform)
		}
	}
	return entries, nil
}

// SearchCommands filters the commands reachable from the element tagged
// tag by a fuzzy query over their descriptions and names, best match first.
func (a *App) SearchCommands(tag, query string, limit int) ([]CommandEntry, error) {
	entries, err := a.FindCommands(tag)
	if err != nil {
		return nil, err
	}

	candidates := make([]fuzzy.Candidate, len(entries))
	for i, e := range entries {
		candidates[i] = fuzzy.Candidate{Text: e.Description + " " + e.Name, Data: e}
	}

	matches := fuzzy.Find(query, candidates, limit)
	out := make([]CommandEntry, len(matches))
	for i, m := range matches {
		out[i] = m.Data.(CommandEntry)
	}
	return out, nil
}

// LoadPlugins runs every configured Lua plugin in order.
func (a *App) LoadPlugins() error {
	for _, path := range a.Config.PluginPaths {
		if err := a.Plugins.Load(path); err != nil {
			return &OperationError{Op: "load plugin", Path: path, Err: err}
		}
	}
	return nil
}

// Close disposes the built-in commands, every menu contribution and the
// plugin host.
func (a *App) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	contributions := a.contributions
	a.contributions = nil
	builtins := a.builtins
	a.builtins = nil
	a.mu.Unlock()

	for _, c := range contributions {
		c.Dispose()
	}
	for _, d := range builtins {
		d.Dispose()
	}
	return a.Plugins.Close()
}
