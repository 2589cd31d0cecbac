package serialize

import "github.com/coopjson/cjson/lib/value"

// pathSet tracks the composite values on the active recursion path, keyed by
// reference identity (composites are pointer types, so interface equality is
// pointer equality). Only the ancestor chain is tracked, not all previously
// visited nodes: a shared sub-tree reached twice via different paths is not
// a cycle and must serialize normally both times.
//
// enter/leave follow a strict stack discipline matching recursion depth.
type pathSet map[value.Value]struct{}

// enter reports whether v is already on the active path (a true cycle) and,
// if not, marks it as entered.
func (p pathSet) enter(v value.Value) bool {
	if _, ok := p[v]; ok {
		return true
	}
	p[v] = struct{}{}
	return false
}

// leave unmarks v. Must run on every exit path from a composite so no stale
// entry survives an error unwind.
func (p pathSet) leave(v value.Value) {
	delete(p, v)
}
