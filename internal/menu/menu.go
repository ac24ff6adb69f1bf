package menu

import (
	"encoding/json"
	"math"
	"runtime"
	"slices"
)

// Specificity ranks conflicting contributions to the same entry.
type Specificity int

// Unbounded is the specificity of a contribution that always wins.
const Unbounded Specificity = math.MaxInt

// Entry is one composed menu entry: the item and the specificity of the
// contribution that placed it.
type Entry struct {
	// Item is the declarative item. Its Submenu is always nil; children live
	// in Submenu below.
	Item Item

	// Specificity of the contribution that created or last replaced the entry.
	// Only meaningful when Recorded reports true.
	Specificity Specificity

	recorded bool

	// Submenu holds the composed children, or nil for an entry without a
	// submenu.
	Submenu *Menu
}

// Recorded reports whether the entry was merged on its own. Entries that
// arrived as children of a newly appended submenu carry no specificity and
// are never replaced by a later merge; their submenus still fold.
func (e *Entry) Recorded() bool {
	return e.recorded
}

// shape returns the item as used for matching.
func (e *Entry) shape() Item {
	it := e.Item
	if e.Submenu != nil {
		it.Submenu = []Item{}
	}
	return it
}

// Menu is an ordered composed menu.
type Menu struct {
	platform string
	entries  []*Entry
}

// Option configures a Menu.
type Option func(*Menu)

// WithPlatform sets the platform used for label normalization.
func WithPlatform(platform string) Option {
	return func(m *Menu) {
		m.platform = platform
	}
}

// New creates an empty menu for the current platform.
func New(opts ...Option) *Menu {
	m := &Menu{platform: runtime.GOOS}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Platform returns the platform the menu normalizes labels for.
func (m *Menu) Platform() string {
	return m.platform
}

// newEntry clones item into an entry recorded with specificity.
func (m *Menu) newEntry(item Item, specificity Specificity) *Entry {
	e := m.build(Clone(item))
	e.Specificity = specificity
	e.recorded = true
	return e
}

// build turns an already cloned item into an unrecorded entry tree.
func (m *Menu) build(item Item) *Entry {
	e := &Entry{}
	if item.Submenu != nil {
		e.Submenu = &Menu{platform: m.platform, entries: make([]*Entry, 0, len(item.Submenu))}
		for _, child := range item.Submenu {
			e.Submenu.entries = append(e.Submenu.entries, e.Submenu.build(child))
		}
		item.Submenu = nil
	}
	e.Item = item
	return e
}

// indexOf returns the position of the entry matching item, or -1.
func (m *Menu) indexOf(item Item) int {
	if item.IsSeparator() {
		return -1
	}
	for i, e := range m.entries {
		if Matches(e.shape(), item, m.platform) {
			return i
		}
	}
	return -1
}

// push appends e unless both e and the current last entry are separators.
func (m *Menu) push(e *Entry) {
	if e.Item.IsSeparator() && len(m.entries) > 0 && m.entries[len(m.entries)-1].Item.IsSeparator() {
		return
	}
	m.entries = append(m.entries, e)
}

// Merge folds item into the menu.
//
// Without a matching entry the item is appended. A matching entry with a
// submenu receives each of item's submenu children recursively, whatever the
// specificity. Otherwise a recorded entry is replaced in place when
// specificity is non-zero and not lower than the entry's.
func (m *Menu) Merge(item Item, specificity Specificity) {
	clone := m.newEntry(item, specificity)

	i := m.indexOf(item)
	if i < 0 {
		m.push(clone)
		return
	}

	match := m.entries[i]
	if item.Submenu != nil {
		for _, child := range item.Submenu {
			match.Submenu.Merge(child, specificity)
		}
		return
	}

	if specificity != 0 && match.recorded && specificity >= match.Specificity {
		m.entries[i] = clone
	}
}

// Unmerge removes item from the menu. Submenu children are removed from the
// matching entry first; the entry itself goes once it has no children left.
// Unmerging an item that is not present does nothing.
func (m *Menu) Unmerge(item Item) {
	i := m.indexOf(item)
	if i < 0 {
		return
	}

	match := m.entries[i]
	if item.Submenu != nil {
		for _, child := range item.Submenu {
			match.Submenu.Unmerge(child)
		}
	}

	if match.Submenu == nil || match.Submenu.Len() == 0 {
		m.entries = slices.Delete(m.entries, i, i+1)
	}
}

// Len returns the number of top level entries.
func (m *Menu) Len() int {
	return len(m.entries)
}

// Entries returns the top level entries. The slice is a copy; the entries are
// shared with the menu.
func (m *Menu) Entries() []*Entry {
	return slices.Clone(m.entries)
}

// Find returns the first non-separator entry whose normalized label equals
// label, or nil.
func (m *Menu) Find(label string) *Entry {
	want := NormalizeLabel(label, m.platform)
	for _, e := range m.entries {
		if !e.Item.IsSeparator() && NormalizeLabel(e.Item.Label, m.platform) == want {
			return e
		}
	}
	return nil
}

// Items returns the composed tree as declarative items, without
// specificities.
func (m *Menu) Items() []Item {
	items := make([]Item, 0, len(m.entries))
	for _, e := range m.entries {
		it := Clone(e.Item)
		if e.Submenu != nil {
			it.Submenu = e.Submenu.Items()
		}
		items = append(items, it)
	}
	return items
}

// MarshalJSON encodes the menu as its item list.
func (m *Menu) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Items())
}
