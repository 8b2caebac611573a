package scope

import "github.com/vk/argscope/internal/catalog"

// Arg is one classified argument, owned by the scope node that collected it.
type Arg struct {
	// Kind mirrors the kind of the resolved definition.
	Kind catalog.Kind
	// Name is the canonical long name. For a free-form command it is the
	// raw body, since no definition exists.
	Name string
	// Def points at the definition the token resolved to, nil only for
	// free-form commands.
	Def *catalog.Definition
	// Value is the captured string for KeyValue args, empty otherwise.
	Value string
	// Index is the argv position of the token that produced this arg.
	Index int
}
