package scope

import "github.com/vk/argscope/internal/catalog"

// Node is a read-only view of one scope in a finished tree.
type Node struct {
	t  *Tree
	id int
}

// Command returns the command arg that opened this scope. The second return
// is false only at the root, which no command opened.
func (n Node) Command() (*Arg, bool) {
	cmd := n.t.nodes[n.id].command
	return cmd, cmd != nil
}

// Parent returns the enclosing scope; false at the root.
func (n Node) Parent() (Node, bool) {
	p := n.t.nodes[n.id].parent
	if p == -1 {
		return Node{}, false
	}
	return Node{t: n.t, id: p}, true
}

// Children returns the nested scopes in encounter order.
func (n Node) Children() []Node {
	ids := n.t.nodes[n.id].children
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{t: n.t, id: id}
	}
	return out
}

// Catalog returns the option catalog this scope answers to. Its Options,
// Option and HasOption accessors are the enumeration surface for help
// rendering.
func (n Node) Catalog() *catalog.Catalog {
	return n.t.nodes[n.id].cat
}

// Args returns the flags and keyvalues collected by this scope, in
// first-encounter order.
func (n Node) Args() []*Arg {
	src := n.t.nodes[n.id].order
	out := make([]*Arg, len(src))
	copy(out, src)
	return out
}

// HasFlag reports whether the named flag is set in this scope, or in an
// ancestor scope when its definition is marked inheritable.
func (n Node) HasFlag(name string) bool {
	_, ok := n.find(name, catalog.KindFlag)
	return ok
}

// HasKey reports whether the named keyvalue was supplied in this scope, or
// in an ancestor scope when inheritable. Defaults do not count as supplied.
func (n Node) HasKey(name string) bool {
	_, ok := n.find(name, catalog.KindKeyValue)
	return ok
}

// Value returns the string bound to a keyvalue option. A value supplied in
// scope (or inherited) wins; otherwise the definition's default, if any, is
// returned with ok=true. Unset and defaultless yields ("", false).
func (n Node) Value(name string) (string, bool) {
	if a, ok := n.find(name, catalog.KindKeyValue); ok {
		return a.Value, true
	}
	if def, ok := n.findDefinition(name); ok && def.Kind == catalog.KindKeyValue && def.Default != "" {
		return def.Default, true
	}
	return "", false
}

// find resolves a name scope-locally first, then walks ancestors accepting
// only args whose definitions are inheritable.
func (n Node) find(name string, kind catalog.Kind) (*Arg, bool) {
	local := true
	for id := n.id; id != -1; id = n.t.nodes[id].parent {
		var m map[string]*Arg
		switch kind {
		case catalog.KindFlag:
			m = n.t.nodes[id].flags
		case catalog.KindKeyValue:
			m = n.t.nodes[id].keys
		case catalog.KindCommand:
			return nil, false
		}
		if a, ok := m[name]; ok {
			if local || (a.Def != nil && a.Def.Inheritable) {
				return a, true
			}
		}
		local = false
	}
	return nil, false
}

// findDefinition resolves a definition against the catalog chain: the local
// catalog unconditionally, ancestors only for inheritable definitions.
func (n Node) findDefinition(name string) (*catalog.Definition, bool) {
	local := true
	for id := n.id; id != -1; id = n.t.nodes[id].parent {
		if def, ok := n.t.nodes[id].cat.Lookup(name); ok {
			if local || def.Inheritable {
				return def, true
			}
		}
		local = false
	}
	return nil, false
}
