package menu_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/stormcmd/internal/menu"
)

func newMenu() *menu.Menu {
	return menu.New(menu.WithPlatform("linux"))
}

func labels(items []menu.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		if it.IsSeparator() {
			out[i] = "---"
			continue
		}
		out[i] = it.Label
	}
	return out
}

func TestMergeAppendsDistinctItems(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "File"}, menu.Unbounded)
	m.Merge(menu.Item{Label: "Edit"}, menu.Unbounded)
	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{}}, menu.Unbounded)

	assert.Equal(t, []string{"File", "Edit", "File"}, labels(m.Items()))
	assert.False(t, m.Items()[0].HasSubmenu())
	assert.True(t, m.Items()[2].HasSubmenu())
}

func TestMergeDoesNotAliasCallerItem(t *testing.T) {
	m := newMenu()
	item := menu.Item{
		Label:   "View",
		Enabled: menu.Bool(true),
		Before:  []string{"Help"},
		Submenu: []menu.Item{{Label: "Zoom"}},
	}
	m.Merge(item, menu.Unbounded)

	*item.Enabled = false
	item.Before[0] = "Window"
	item.Submenu[0].Label = "Shrink"

	got := m.Items()[0]
	assert.True(t, *got.Enabled)
	assert.Equal(t, []string{"Help"}, got.Before)
	assert.Equal(t, "Zoom", got.Submenu[0].Label)
}

func TestMergeSpecificity(t *testing.T) {
	tests := []struct {
		name     string
		existing menu.Specificity
		incoming menu.Specificity
		want     string
	}{
		{"lower loses", 10, 5, "first"},
		{"equal wins", 10, 10, "second"},
		{"higher wins", 10, 20, "second"},
		{"unbounded wins over unbounded", menu.Unbounded, menu.Unbounded, "second"},
		{"zero never wins", 0, 0, "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMenu()
			m.Merge(menu.Item{Label: "Save", Command: "first"}, tt.existing)
			m.Merge(menu.Item{Label: "Save", Command: "second"}, tt.incoming)

			require.Equal(t, 1, m.Len())
			assert.Equal(t, tt.want, m.Items()[0].Command)
		})
	}
}

func TestMergeReplacesInPlace(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "A"}, 1)
	m.Merge(menu.Item{Label: "B", Command: "old"}, 1)
	m.Merge(menu.Item{Label: "C"}, 1)
	m.Merge(menu.Item{Label: "B", Command: "new"}, 2)

	items := m.Items()
	assert.Equal(t, []string{"A", "B", "C"}, labels(items))
	assert.Equal(t, "new", items[1].Command)
	assert.Equal(t, menu.Specificity(2), m.Entries()[1].Specificity)
}

func TestMergeLabelNormalization(t *testing.T) {
	linux := newMenu()
	linux.Merge(menu.Item{Label: "&File", Command: "a"}, 1)
	linux.Merge(menu.Item{Label: "File", Command: "b"}, 1)
	require.Equal(t, 1, linux.Len())
	assert.Equal(t, "File", linux.Items()[0].Label)

	mac := menu.New(menu.WithPlatform(menu.PlatformDarwin))
	mac.Merge(menu.Item{Label: "&File", Command: "a"}, 1)
	mac.Merge(menu.Item{Label: "File", Command: "b"}, 1)
	assert.Equal(t, 2, mac.Len())
}

func TestMergeFoldsSubmenusRegardlessOfSpecificity(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{
		{Label: "Open", Command: "files:open"},
	}}, 100)
	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{
		{Label: "Close", Command: "files:close"},
		{Label: "Open", Command: "other:open"},
	}}, 1)

	require.Equal(t, 1, m.Len())
	file := m.Items()[0]
	assert.Equal(t, []string{"Open", "Close"}, labels(file.Submenu))
	assert.Equal(t, "files:open", file.Submenu[0].Command, "lower specificity child must not replace")

	// Close was merged on its own at specificity 1, so a higher one replaces it.
	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{
		{Label: "Close", Command: "override:close"},
	}}, 100)
	assert.Equal(t, "override:close", m.Items()[0].Submenu[1].Command)
}

func TestMergeNestedSubmenus(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "Packages", Submenu: []menu.Item{
		{Label: "Git", Submenu: []menu.Item{{Label: "Commit"}}},
	}}, menu.Unbounded)
	m.Merge(menu.Item{Label: "Packages", Submenu: []menu.Item{
		{Label: "Git", Submenu: []menu.Item{{Label: "Push"}}},
		{Label: "Lint", Submenu: []menu.Item{{Label: "Run"}}},
	}}, menu.Unbounded)

	pkgs := m.Find("Packages")
	require.NotNil(t, pkgs)
	require.NotNil(t, pkgs.Submenu)
	assert.Equal(t, []string{"Git", "Lint"}, labels(pkgs.Submenu.Items()))
	assert.Equal(t, []string{"Commit", "Push"}, labels(pkgs.Submenu.Find("Git").Submenu.Items()))
}

func TestSeparatorDeduplication(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Separator(), menu.Unbounded)
	m.Merge(menu.Separator(), menu.Unbounded)
	m.Merge(menu.Item{Label: "Open"}, menu.Unbounded)
	m.Merge(menu.Separator(), menu.Unbounded)
	m.Merge(menu.Separator(), menu.Unbounded)
	m.Merge(menu.Item{Label: "Quit"}, menu.Unbounded)

	assert.Equal(t, []string{"---", "Open", "---", "Quit"}, labels(m.Items()))
}

func TestSeparatorsDeduplicatedInsideSubmenus(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{{Label: "Open"}, menu.Separator()}}, menu.Unbounded)
	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{menu.Separator(), {Label: "Quit"}}}, menu.Unbounded)

	assert.Equal(t, []string{"Open", "---", "Quit"}, labels(m.Items()[0].Submenu))
}

func TestUnmergeLeaf(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "Open"}, menu.Unbounded)
	m.Merge(menu.Item{Label: "Close"}, menu.Unbounded)

	m.Unmerge(menu.Item{Label: "Open"})
	assert.Equal(t, []string{"Close"}, labels(m.Items()))

	m.Unmerge(menu.Item{Label: "Missing"})
	m.Unmerge(menu.Separator())
	assert.Equal(t, []string{"Close"}, labels(m.Items()))
}

func TestUnmergeSubmenuKeepsRemainingChildren(t *testing.T) {
	m := newMenu()
	a := menu.Item{Label: "File", Submenu: []menu.Item{{Label: "Open"}}}
	b := menu.Item{Label: "File", Submenu: []menu.Item{{Label: "Close"}}}
	m.Merge(a, menu.Unbounded)
	m.Merge(b, menu.Unbounded)

	m.Unmerge(a)
	require.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"Close"}, labels(m.Items()[0].Submenu))

	m.Unmerge(b)
	assert.Equal(t, 0, m.Len())
}

func TestUnmergeRemovesEmptySubmenuEntry(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "Tools", Submenu: []menu.Item{}}, menu.Unbounded)
	m.Unmerge(menu.Item{Label: "Tools", Submenu: []menu.Item{}})
	assert.Equal(t, 0, m.Len())
}

func TestMergeUnmergeRoundTrip(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{{Label: "Open"}, menu.Separator(), {Label: "Quit"}}}, menu.Unbounded)
	m.Merge(menu.Item{Label: "Help"}, menu.Unbounded)
	before := m.Items()

	x := menu.Item{Label: "File", Submenu: []menu.Item{{Label: "Reopen"}, {Label: "Export", Submenu: []menu.Item{{Label: "PDF"}}}}}
	m.Merge(x, menu.Unbounded)
	m.Merge(menu.Item{Label: "View"}, menu.Unbounded)
	require.NotEqual(t, before, m.Items())

	m.Unmerge(menu.Item{Label: "View"})
	m.Unmerge(x)
	assert.Equal(t, before, m.Items())
}

func TestRoundTripKeepsSubmenuSeparators(t *testing.T) {
	m := newMenu()
	edit := menu.Item{Label: "Edit", Submenu: []menu.Item{{Label: "Copy"}, menu.Separator(), {Label: "Paste"}}}
	m.Merge(edit, menu.Unbounded)
	m.Unmerge(edit)

	// Separators have no identity, so they outlive the items around them and
	// keep their parent entry alive.
	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Edit", items[0].Label)
	assert.Equal(t, []string{"---"}, labels(items[0].Submenu))
}

func TestItemsStripsSpecificityAndKeepsEmptySubmenu(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "Empty", Submenu: []menu.Item{}}, 3)

	items := m.Items()
	require.Len(t, items, 1)
	assert.NotNil(t, items[0].Submenu)
	assert.Empty(t, items[0].Submenu)
	assert.Equal(t, menu.Specificity(3), m.Entries()[0].Specificity)
}

func TestChildrenOfAppendedSubmenuAreNeverReplaced(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{{Label: "Open", Command: "a"}}}, menu.Unbounded)

	file := m.Find("File")
	require.NotNil(t, file)
	assert.True(t, file.Recorded())
	open := file.Submenu.Find("Open")
	require.NotNil(t, open)
	assert.False(t, open.Recorded())

	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{{Label: "Open", Command: "b"}}}, menu.Unbounded)
	assert.Equal(t, "a", m.Items()[0].Submenu[0].Command)

	// Unrecorded children still fold their own submenus.
	m.Merge(menu.Item{Label: "Edit", Submenu: []menu.Item{
		{Label: "Find", Submenu: []menu.Item{{Label: "Next"}}},
	}}, menu.Unbounded)
	m.Merge(menu.Item{Label: "Edit", Submenu: []menu.Item{
		{Label: "Find", Submenu: []menu.Item{{Label: "Previous"}}},
	}}, menu.Unbounded)
	assert.Equal(t, []string{"Next", "Previous"}, labels(m.Items()[1].Submenu[0].Submenu))
}

func TestComposedMenuGolden(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "&File", Submenu: []menu.Item{
		{Label: "Open", Command: "files:open", Accelerator: "Ctrl+O"},
	}}, menu.Unbounded)
	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{
		menu.Separator(),
		{Label: "Close", Command: "files:close"},
	}}, menu.Unbounded)
	m.Merge(menu.Item{Label: "Help", Role: "help", Submenu: []menu.Item{
		{Label: "About", Command: "application:about", Enabled: menu.Bool(false)},
	}}, menu.Unbounded)

	out, err := json.MarshalIndent(m.Items(), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "composed-menu", out)
}

func TestMarshalJSON(t *testing.T) {
	m := newMenu()
	m.Merge(menu.Item{Label: "Quit", Role: "quit"}, menu.Unbounded)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"label":"Quit","role":"quit"}]`, string(out))
}

func TestMatches(t *testing.T) {
	assert.True(t, menu.Matches(menu.Item{Label: "&Edit"}, menu.Item{Label: "Edit"}, "windows"))
	assert.False(t, menu.Matches(menu.Item{Label: "&Edit"}, menu.Item{Label: "Edit"}, menu.PlatformDarwin))
	assert.False(t, menu.Matches(menu.Item{Label: "Edit"}, menu.Item{Label: "Edit", Submenu: []menu.Item{}}, "linux"))
	assert.False(t, menu.Matches(menu.Separator(), menu.Separator(), "linux"))
	assert.False(t, menu.Matches(menu.Item{}, menu.Separator(), "linux"))
}
