package scope

import "github.com/vk/argscope/internal/catalog"

// Builder is the single writer of a scope tree. The parse session walks the
// classified token stream through it: Enter on each command, Put on each
// flag or keyvalue, Finish once the stream is exhausted.
type Builder struct {
	tree   *Tree
	active int
}

// NewBuilder creates a tree whose root scope answers to the given catalog.
func NewBuilder(root *catalog.Catalog) *Builder {
	t := &Tree{nodes: []node{{
		parent: -1,
		cat:    root,
		flags:  make(map[string]*Arg),
		keys:   make(map[string]*Arg),
	}}}
	return &Builder{tree: t}
}

// Depth returns how many commands deep the active scope sits; 0 at root.
func (b *Builder) Depth() int {
	depth := 0
	for id := b.active; b.tree.nodes[id].parent != -1; id = b.tree.nodes[id].parent {
		depth++
	}
	return depth
}

// Catalogs returns the catalog chain of the active scope, innermost first,
// root last. The classifier walks it for inheritable resolution.
func (b *Builder) Catalogs() []*catalog.Catalog {
	var chain []*catalog.Catalog
	for id := b.active; id != -1; id = b.tree.nodes[id].parent {
		chain = append(chain, b.tree.nodes[id].cat)
	}
	return chain
}

// Enter opens a new child scope for a command arg and makes it active. The
// child's catalog is the command definition's nested catalog, or the empty
// catalog for free-form commands.
func (b *Builder) Enter(cmd *Arg) {
	cat := catalog.Empty
	if cmd.Def != nil {
		cat = cmd.Def.Sub()
	}
	id := len(b.tree.nodes)
	b.tree.nodes = append(b.tree.nodes, node{
		parent:  b.active,
		command: cmd,
		cat:     cat,
		flags:   make(map[string]*Arg),
		keys:    make(map[string]*Arg),
	})
	b.tree.nodes[b.active].children = append(b.tree.nodes[b.active].children, id)
	b.active = id
}

// Put attaches a flag or keyvalue arg to the active scope. Repeats are
// last-write-wins: the stored arg is replaced in place, so encounter order
// keeps the first position and repeated flags stay idempotent.
func (b *Builder) Put(a *Arg) {
	n := &b.tree.nodes[b.active]
	var m map[string]*Arg
	switch a.Kind {
	case catalog.KindFlag:
		m = n.flags
	case catalog.KindKeyValue:
		m = n.keys
	case catalog.KindCommand:
		panic("scope: commands must go through Builder.Enter")
	}
	if prev, ok := m[a.Name]; ok {
		*prev = *a
		return
	}
	m[a.Name] = a
	n.order = append(n.order, a)
}

// Finish seals the tree and returns it. The builder must not be used after.
func (b *Builder) Finish() *Tree {
	t := b.tree
	b.tree = nil
	return t
}
