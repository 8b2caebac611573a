package scope

import "github.com/vk/argscope/internal/catalog"

// node is one arena slot. Links are arena indices; -1 means absent.
type node struct {
	parent   int
	command  *Arg // nil only at the root
	cat      *catalog.Catalog
	flags    map[string]*Arg
	keys     map[string]*Arg
	order    []*Arg // flags and keyvalues in first-encounter order
	children []int
}

// Tree is the completed scope tree. It is read-only; all mutation happens
// through the Builder before Finish.
type Tree struct {
	nodes []node
}

// Root returns the top-level scope, the one active before any command token.
func (t *Tree) Root() Node {
	return Node{t: t, id: 0}
}

// Len returns the number of scopes in the tree, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Tokens re-serializes the tree into a canonical argv: commands as bare
// names, flags and keyvalues in long form, in encounter order, descending
// depth-first. Parsing the result against the same catalog rebuilds an
// identical tree.
func (t *Tree) Tokens() []string {
	var out []string
	t.appendTokens(&out, 0)
	return out
}

func (t *Tree) appendTokens(out *[]string, id int) {
	n := &t.nodes[id]
	if n.command != nil {
		*out = append(*out, n.command.Name)
	}
	for _, a := range n.order {
		switch a.Kind {
		case catalog.KindFlag:
			*out = append(*out, "--"+a.Name)
		case catalog.KindKeyValue:
			*out = append(*out, "--"+a.Name, a.Value)
		case catalog.KindCommand:
			// Commands live as child nodes, never in the arg order.
		}
	}
	for _, child := range n.children {
		t.appendTokens(out, child)
	}
}
