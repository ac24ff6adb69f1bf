package menu

import (
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Manager owns one composed menu and tracks the contributions merged into it.
// It is safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	menu   *Menu
	logger *log.Logger

	listeners map[int]func([]Item)
	nextID    int
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerConfig)

type managerConfig struct {
	menuOpts []Option
	logger   *log.Logger
}

// WithMenuOptions passes options to the underlying menu.
func WithMenuOptions(opts ...Option) ManagerOption {
	return func(c *managerConfig) {
		c.menuOpts = append(c.menuOpts, opts...)
	}
}

// WithLogger sets the logger for merge and unmerge events.
func WithLogger(logger *log.Logger) ManagerOption {
	return func(c *managerConfig) {
		c.logger = logger
	}
}

// NewManager creates a manager with an empty menu.
func NewManager(opts ...ManagerOption) *Manager {
	var cfg managerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	return &Manager{
		menu:      New(cfg.menuOpts...),
		logger:    cfg.logger,
		listeners: make(map[int]func([]Item)),
	}
}

// Contribution is a set of items merged by one call to Add.
type Contribution struct {
	id    string
	items []Item
	once  sync.Once
	m     *Manager
}

// ID returns the contribution's unique identifier.
func (c *Contribution) ID() string {
	return c.id
}

// Items returns a copy of the contributed items.
func (c *Contribution) Items() []Item {
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = Clone(it)
	}
	return out
}

// Dispose unmerges the contribution. Only the first call has an effect.
func (c *Contribution) Dispose() {
	c.once.Do(func() {
		c.m.remove(c)
	})
}

// Add merges items with the given specificity and returns the contribution.
func (m *Manager) Add(items []Item, specificity Specificity) *Contribution {
	c := &Contribution{
		id: uuid.NewString(),
		m:  m,
	}
	for _, it := range items {
		c.items = append(c.items, Clone(it))
	}

	m.mu.Lock()
	for _, it := range c.items {
		m.menu.Merge(it, specificity)
	}
	m.mu.Unlock()

	m.logger.Debug("menu merged", "contribution", c.id, "items", len(c.items), "specificity", specificity)
	m.notify()
	return c
}

// AddTemplate merges a parsed fragment.
func (m *Manager) AddTemplate(t Template) *Contribution {
	return m.Add(t.Items, t.Specificity)
}

func (m *Manager) remove(c *Contribution) {
	m.mu.Lock()
	for _, it := range c.items {
		m.menu.Unmerge(it)
	}
	m.mu.Unlock()

	m.logger.Debug("menu unmerged", "contribution", c.id, "items", len(c.items))
	m.notify()
}

// Template returns the composed menu as declarative items.
func (m *Manager) Template() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.menu.Items()
}

// OnDidChange registers fn to receive the composed template after every
// change. The returned function unregisters it.
func (m *Manager) OnDidChange(fn func([]Item)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Manager) notify() {
	m.mu.Lock()
	ids := make([]int, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func([]Item), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.listeners[id])
	}
	var template []Item
	if len(fns) > 0 {
		template = m.menu.Items()
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(template)
	}
}
