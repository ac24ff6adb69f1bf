package lua_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/stormcmd/internal/plugin/lua"
)

func TestBridgeToGoValue(t *testing.T) {
	state := lua.NewState()
	defer state.Close()

	require.NoError(t, state.DoString(`
value = {
	label = "File",
	enabled = false,
	weight = 1.5,
	submenu = { { label = "Open" }, { type = "separator" } },
	empty = {},
}`))

	b := lua.NewBridge(state.L)
	got := b.ToGoValue(state.GetGlobal("value"))
	assert.Equal(t, map[string]any{
		"label":   "File",
		"enabled": false,
		"weight":  1.5,
		"submenu": []any{
			map[string]any{"label": "Open"},
			map[string]any{"type": "separator"},
		},
		"empty": []any{},
	}, got)
}

func TestBridgeToLuaValue(t *testing.T) {
	state := lua.NewState()
	defer state.Close()
	b := lua.NewBridge(state.L)

	assert.Equal(t, glua.LNil, b.ToLuaValue(nil))
	assert.Equal(t, glua.LNumber(7), b.ToLuaValue(uint8(7)))
	assert.Equal(t, glua.LString("x"), b.ToLuaValue("x"))

	tbl, ok := b.ToLuaValue(map[string]any{"lines": []int{1, 2}}).(*glua.LTable)
	require.True(t, ok)
	lines, ok := tbl.RawGetString("lines").(*glua.LTable)
	require.True(t, ok)
	assert.Equal(t, 2, lines.Len())
	assert.Equal(t, glua.LNumber(2), lines.RawGetInt(2))

	assert.Equal(t, map[string]any{"lines": []any{int64(1), int64(2)}}, b.ToGoValue(tbl))
}

func TestBridgeCycle(t *testing.T) {
	state := lua.NewState()
	defer state.Close()

	require.NoError(t, state.DoString(`t = { name = "a" }; t.self = t`))
	got := lua.NewBridge(state.L).ToGoValue(state.GetGlobal("t"))
	assert.Equal(t, map[string]any{"name": "a", "self": nil}, got)
}
