// Package script runs the Lua handlers of a document. A document may
// declare on_key, on_text, on_mouse, on_mouse_move, and on_resize
// functions; the engine converts each canonical event to a Lua table,
// calls the matching handler, and treats a truthy return value as a
// consumed verdict.
//
// The Lua state is sandboxed: only the base, string, table, and math
// libraries are opened, and the load family of functions is removed so
// document scripts cannot reach the filesystem or spawn code at
// runtime.
package script
