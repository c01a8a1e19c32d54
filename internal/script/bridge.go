package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/storyforge/runebook/internal/input/event"
)

// The bridge converts canonical events into the Lua tables handlers
// receive. Field names are part of the scripting contract documents
// rely on; changing them breaks existing scripts.

func modsTable(L *lua.LState, mods event.Modifier) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "shift", lua.LBool(mods.HasShift()))
	L.SetField(t, "alt", lua.LBool(mods.HasAlt()))
	L.SetField(t, "ctrl", lua.LBool(mods.HasCtrl()))
	L.SetField(t, "super", lua.LBool(mods.HasSuper()))
	return t
}

func keyTable(L *lua.LState, ev event.KeyEvent) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "code", lua.LNumber(ev.Code))
	L.SetField(t, "name", lua.LString(ev.Code.String()))
	L.SetField(t, "action", lua.LString(ev.Action.String()))
	L.SetField(t, "mods", modsTable(L, ev.Mods))
	return t
}

func textTable(L *lua.LState, ev event.TextEvent) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "text", lua.LString(ev.Text))
	L.SetField(t, "graphemes", lua.LNumber(ev.GraphemeCount()))
	L.SetField(t, "mods", modsTable(L, ev.Mods))
	return t
}

func mouseTable(L *lua.LState, ev event.MouseEvent) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "button", lua.LString(ev.Button.String()))
	L.SetField(t, "x", lua.LNumber(ev.X))
	L.SetField(t, "y", lua.LNumber(ev.Y))
	L.SetField(t, "action", lua.LString(ev.Action.String()))
	L.SetField(t, "mods", modsTable(L, ev.Mods))
	return t
}

func mouseMoveTable(L *lua.LState, ev event.MouseMoveEvent) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "x", lua.LNumber(ev.X))
	L.SetField(t, "y", lua.LNumber(ev.Y))
	L.SetField(t, "mods", modsTable(L, ev.Mods))
	return t
}

func resizeTable(L *lua.LState, ev event.ResizeEvent) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "width", lua.LNumber(ev.Width))
	L.SetField(t, "height", lua.LNumber(ev.Height))
	return t
}
