package lua

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/stormcmd/internal/command"
	"github.com/dshills/stormcmd/internal/menu"
)

// ModuleName is the global table plugins use to reach the host.
const ModuleName = "stormcmd"

// Host runs plugin scripts against a command registry and a menu manager.
type Host struct {
	state    *State
	bridge   *Bridge
	commands *command.Registry
	menus    *menu.Manager
	logger   *log.Logger

	mu          sync.Mutex
	disposables []interface{ Dispose() }
	scripts     []string
	closed      bool
}

// HostOption configures a Host.
type HostOption func(*hostConfig)

type hostConfig struct {
	logger    *log.Logger
	stateOpts []StateOption
}

// WithLogger sets the logger for plugin activity.
func WithLogger(logger *log.Logger) HostOption {
	return func(c *hostConfig) {
		c.logger = logger
	}
}

// WithStateOptions passes options to the underlying State.
func WithStateOptions(opts ...StateOption) HostOption {
	return func(c *hostConfig) {
		c.stateOpts = append(c.stateOpts, opts...)
	}
}

// NewHost creates a Host with a fresh sandboxed state. menus may be nil,
// in which case add_menu raises an error.
func NewHost(commands *command.Registry, menus *menu.Manager, opts ...HostOption) *Host {
	var cfg hostConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	state := NewState(cfg.stateOpts...)
	h := &Host{
		state:    state,
		bridge:   NewBridge(state.L),
		commands: commands,
		menus:    menus,
		logger:   cfg.logger,
	}
	state.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"add_command": h.luaAddCommand,
		"add_menu":    h.luaAddMenu,
	})
	return h
}

// Load runs the plugin script at path.
func (h *Host) Load(path string) error {
	if h.isClosed() {
		return ErrHostClosed
	}
	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("load plugin %s: %w", path, err)
	}

	h.mu.Lock()
	h.scripts = append(h.scripts, path)
	h.mu.Unlock()

	h.logger.Info("plugin loaded", "path", path)
	return nil
}

// LoadString runs code as a plugin named name.
func (h *Host) LoadString(name, code string) error {
	if h.isClosed() {
		return ErrHostClosed
	}
	if err := h.state.DoString(code); err != nil {
		return fmt.Errorf("load plugin %s: %w", name, err)
	}

	h.mu.Lock()
	h.scripts = append(h.scripts, name)
	h.mu.Unlock()

	h.logger.Debug("plugin loaded", "name", name)
	return nil
}

// State returns the Lua state plugins run in.
func (h *Host) State() *State {
	return h.state
}

// Scripts returns the names of the loaded plugins in load order.
func (h *Host) Scripts() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.scripts...)
}

// Close disposes every binding and contribution made by plugins and then
// closes the Lua state.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	disposables := h.disposables
	h.disposables = nil
	h.mu.Unlock()

	for _, d := range disposables {
		d.Dispose()
	}
	return h.state.Close()
}

func (h *Host) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

func (h *Host) track(d interface{ Dispose() }) {
	h.mu.Lock()
	h.disposables = append(h.disposables, d)
	h.mu.Unlock()
}

// luaAddCommand implements stormcmd.add_command(selector, name, fn[, description]).
func (h *Host) luaAddCommand(L *lua.LState) int {
	selector := L.CheckString(1)
	name := L.CheckString(2)
	fn := L.CheckFunction(3)
	description := L.OptString(4, "")

	var opts []command.BindingOption
	if description != "" {
		opts = append(opts, command.WithDescription(description))
	}

	d := h.commands.Add(selector, name, h.handler(name, fn), opts...)
	h.track(d)
	h.logger.Debug("plugin command added", "selector", selector, "command", name)

	L.Push(disposeFunc(L, d))
	return 1
}

// luaAddMenu implements stormcmd.add_menu(items[, specificity]).
func (h *Host) luaAddMenu(L *lua.LState) int {
	if h.menus == nil {
		L.RaiseError("menus are not available")
		return 0
	}

	items, err := menu.DecodeList(h.bridge.ToGoValue(L.CheckTable(1)))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}

	specificity := menu.Unbounded
	if L.GetTop() >= 2 && L.Get(2) != lua.LNil {
		switch n := float64(L.CheckNumber(2)); {
		case n >= math.MaxInt:
		case n <= math.MinInt:
			specificity = math.MinInt
		default:
			specificity = menu.Specificity(n)
		}
	}

	c := h.menus.Add(items, specificity)
	h.track(c)

	L.Push(disposeFunc(L, c))
	return 1
}

// handler adapts a Lua function to a command handler. The function runs
// synchronously during dispatch; a Lua error rejects the promise.
func (h *Host) handler(name string, fn *lua.LFunction) command.Handler {
	return func(target command.Node, args any) command.Promise {
		err := h.state.Do(func(L *lua.LState) error {
			p := lua.P{Fn: fn, NRet: 0, Protect: true}
			return L.CallByParam(p, h.nodeTable(L, target), h.bridge.ToLuaValue(args))
		})
		if err != nil {
			if errors.Is(err, ErrStateClosed) {
				return command.Reject(err)
			}
			h.logger.Warn("plugin command failed", "command", name, "err", firstLine(err))
			return command.Reject(fmt.Errorf("%s: %w", name, err))
		}
		return command.Resolve()
	}
}

// nodeTable builds {tag = ..., parent = ...} for n and its ancestors.
func (h *Host) nodeTable(L *lua.LState, n command.Node) lua.LValue {
	var (
		head, prev *lua.LTable
		seen       = make(map[command.Node]bool)
	)
	for cur := n; cur != nil && !seen[cur]; cur = command.ParentOf(cur) {
		seen[cur] = true
		t := L.NewTable()
		t.RawSetString("tag", lua.LString(cur.Tag()))
		if prev == nil {
			head = t
		} else {
			prev.RawSetString("parent", t)
		}
		prev = t
	}
	if head == nil {
		return lua.LNil
	}
	return head
}

func disposeFunc(L *lua.LState, d interface{ Dispose() }) *lua.LFunction {
	return L.NewFunction(func(*lua.LState) int {
		d.Dispose()
		return 0
	})
}

func firstLine(err error) string {
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}
