package catalog

// Catalog is the frozen, read-only set of option definitions for one scope.
// All methods are safe for concurrent use; nothing mutates a catalog after
// Builder.Freeze returns it.
type Catalog struct {
	defs    map[string]*Definition
	abbrevs map[rune]*Definition
	order   []string
}

// Empty is a frozen catalog with no definitions. It backs free-form
// commands, which accept no further options of their own.
var Empty = NewBuilder().Freeze()

// Lookup resolves a long name to its definition.
func (c *Catalog) Lookup(name string) (*Definition, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// LookupAbbrev resolves a single-letter abbreviation to its definition.
func (c *Catalog) LookupAbbrev(r rune) (*Definition, bool) {
	d, ok := c.abbrevs[r]
	return d, ok
}

// Contains reports whether a long name is registered.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.defs[name]
	return ok
}

// Options enumerates all definitions in registration order. The slice is
// freshly allocated; callers may not reach the catalog's internals through it.
func (c *Catalog) Options() []*Definition {
	out := make([]*Definition, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.defs[name])
	}
	return out
}

// Option is the help-surface accessor for a single definition by long name.
func (c *Catalog) Option(name string) (*Definition, bool) {
	return c.Lookup(name)
}

// HasOption is the help-surface accessor for name membership.
func (c *Catalog) HasOption(name string) bool {
	return c.Contains(name)
}

// Names returns the registered long names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of registered definitions.
func (c *Catalog) Len() int {
	return len(c.order)
}
