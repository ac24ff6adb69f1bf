package menu

import (
	"maps"
	"slices"
)

// TypeSeparator is the Type of a separator item.
const TypeSeparator = "separator"

// Item is a declarative menu item as exchanged with the renderer.
//
// A nil Submenu means the item has no submenu; an empty non-nil Submenu is an
// empty submenu.
type Item struct {
	Type                  string         `json:"type,omitempty"`
	Label                 string         `json:"label,omitempty"`
	Enabled               *bool          `json:"enabled,omitempty"`
	Visible               *bool          `json:"visible,omitempty"`
	Command               string         `json:"command,omitempty"`
	CommandDetail         map[string]any `json:"commandDetail,omitempty"`
	Role                  string         `json:"role,omitempty"`
	Accelerator           string         `json:"accelerator,omitempty"`
	Before                []string       `json:"before,omitempty"`
	After                 []string       `json:"after,omitempty"`
	BeforeGroupContaining []string       `json:"beforeGroupContaining,omitempty"`
	AfterGroupContaining  []string       `json:"afterGroupContaining,omitempty"`
	Submenu               []Item         `json:"submenu,omitempty"`
}

// Separator returns a separator item.
func Separator() Item {
	return Item{Type: TypeSeparator}
}

// IsSeparator reports whether the item is a separator.
func (i Item) IsSeparator() bool {
	return i.Type == TypeSeparator
}

// HasSubmenu reports whether the item carries a submenu, even an empty one.
func (i Item) HasSubmenu() bool {
	return i.Submenu != nil
}

// Clone returns a deep copy of item. The submenu is cloned recursively and
// keeps the distinction between no submenu and an empty one.
func Clone(item Item) Item {
	c := item
	if item.Enabled != nil {
		v := *item.Enabled
		c.Enabled = &v
	}
	if item.Visible != nil {
		v := *item.Visible
		c.Visible = &v
	}
	c.CommandDetail = maps.Clone(item.CommandDetail)
	c.Before = slices.Clone(item.Before)
	c.After = slices.Clone(item.After)
	c.BeforeGroupContaining = slices.Clone(item.BeforeGroupContaining)
	c.AfterGroupContaining = slices.Clone(item.AfterGroupContaining)
	if item.Submenu != nil {
		c.Submenu = make([]Item, len(item.Submenu))
		for n, child := range item.Submenu {
			c.Submenu[n] = Clone(child)
		}
	}
	return c
}

// Bool returns a pointer to v, for the Enabled and Visible fields.
func Bool(v bool) *bool {
	return &v
}
