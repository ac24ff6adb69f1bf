package menu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/stormcmd/internal/menu"
)

func TestManagerContributions(t *testing.T) {
	mgr := menu.NewManager(menu.WithMenuOptions(menu.WithPlatform("linux")))

	var changes [][]menu.Item
	unsubscribe := mgr.OnDidChange(func(items []menu.Item) {
		changes = append(changes, items)
	})

	core := mgr.Add([]menu.Item{
		{Label: "&File", Submenu: []menu.Item{{Label: "Open", Command: "files:open"}}},
	}, menu.Unbounded)
	git := mgr.Add([]menu.Item{
		{Label: "File", Submenu: []menu.Item{{Label: "Commit", Command: "git:commit"}}},
		{Label: "Git", Submenu: []menu.Item{{Label: "Push", Command: "git:push"}}},
	}, menu.Unbounded)

	assert.NotEqual(t, core.ID(), git.ID())
	require.Len(t, changes, 2)

	tmpl := mgr.Template()
	require.Len(t, tmpl, 2)
	assert.Equal(t, []string{"Open", "Commit"}, labels(tmpl[0].Submenu))

	git.Dispose()
	git.Dispose()
	require.Len(t, changes, 3)

	tmpl = mgr.Template()
	require.Len(t, tmpl, 1)
	assert.Equal(t, []string{"Open"}, labels(tmpl[0].Submenu))

	unsubscribe()
	core.Dispose()
	assert.Len(t, changes, 3)
	assert.Empty(t, mgr.Template())
}

func TestContributionIsIsolatedFromCaller(t *testing.T) {
	mgr := menu.NewManager()
	items := []menu.Item{{Label: "View", Submenu: []menu.Item{{Label: "Zoom"}}}}
	c := mgr.Add(items, menu.Unbounded)

	items[0].Submenu[0].Label = "Other"
	c.Dispose()

	assert.Empty(t, mgr.Template())
	assert.Equal(t, "Zoom", c.Items()[0].Submenu[0].Label)
}

func TestManagerAddTemplate(t *testing.T) {
	mgr := menu.NewManager()
	c := mgr.AddTemplate(menu.Template{Items: []menu.Item{{Label: "Save", Command: "a"}}, Specificity: 1})
	mgr.AddTemplate(menu.Template{Items: []menu.Item{{Label: "Save", Command: "b"}}, Specificity: 0})

	assert.Equal(t, "a", mgr.Template()[0].Command)
	c.Dispose()
	assert.Empty(t, mgr.Template())
}
