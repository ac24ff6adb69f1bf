package loader_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/stormcmd/internal/config/loader"
)

var files = fstest.MapFS{
	"menus/core.toml": {Data: []byte(`
specificity = 5

[[menu]]
label = "&File"

  [[menu.submenu]]
  label = "Open"
  command = "files:open"
`)},
	"menus/git.yaml": {Data: []byte(`
menu:
  - label: Git
    submenu:
      - label: Push
        command: git:push
`)},
	"menus/help.json": {Data: []byte(`{"menu":[{"label":"Help","role":"help"}]}`)},
	"menus/broken.toml": {Data: []byte("menu = [\n")},
}

func TestLoadByExtension(t *testing.T) {
	fsys := loader.FS(files)

	l, err := loader.ForPathWithFS(fsys, "menus/core.toml")
	require.NoError(t, err)
	doc, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(5), doc["specificity"])
	menu := doc["menu"].([]any)
	require.Len(t, menu, 1)
	file := menu[0].(map[string]any)
	assert.Equal(t, "&File", file["label"])
	assert.Len(t, file["submenu"], 1)

	l, err = loader.ForPathWithFS(fsys, "menus/git.yaml")
	require.NoError(t, err)
	doc, err = l.Load()
	require.NoError(t, err)
	git := doc["menu"].([]any)[0].(map[string]any)
	assert.Equal(t, "Git", git["label"])

	l, err = loader.ForPathWithFS(fsys, "menus/help.json")
	require.NoError(t, err)
	doc, err = l.Load()
	require.NoError(t, err)
	assert.Equal(t, "help", doc["menu"].([]any)[0].(map[string]any)["role"])
}

func TestMissingFileIsNotAnError(t *testing.T) {
	l, err := loader.ForPathWithFS(loader.FS(files), "menus/none.yaml")
	require.NoError(t, err)

	doc, err := l.Load()
	assert.NoError(t, err)
	assert.Nil(t, doc)

	var v struct{ Name string }
	found, err := l.LoadInto("menus/none.yaml", &v)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestParseError(t *testing.T) {
	l, err := loader.ForPathWithFS(loader.FS(files), "menus/broken.toml")
	require.NoError(t, err)

	_, err = l.Load()
	var pe *loader.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "menus/broken.toml", pe.Path)
	assert.Equal(t, "toml", pe.Format)
	assert.Positive(t, pe.Line)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := loader.ForPath("menus/core.ini")
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)
}

func TestLoadFromReader(t *testing.T) {
	doc, err := loader.NewYAMLLoader("").LoadFromReader(strings.NewReader("platform: darwin\n"))
	require.NoError(t, err)
	assert.Equal(t, "darwin", doc["platform"])
}
