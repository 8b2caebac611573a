package catalog

import (
	"errors"
	"fmt"
)

// DuplicateError reports a registration collision on a long name or an
// abbreviation within one catalog.
type DuplicateError struct {
	Name   string
	Abbrev rune
}

// Error implements the error interface for DuplicateError.
func (e *DuplicateError) Error() string {
	if e.Abbrev != 0 {
		return fmt.Sprintf("duplicate option abbreviation %q (while registering %q)", string(e.Abbrev), e.Name)
	}
	return fmt.Sprintf("duplicate option name %q", e.Name)
}

// Builder accumulates option definitions for one scope level. It is the
// mutable half of the builder/freeze split; Freeze produces the read-only
// Catalog handed to the parser.
type Builder struct {
	defs    map[string]*Definition
	abbrevs map[rune]*Definition
	order   []string
	subs    map[string]*Builder
	frozen  *Catalog
}

// NewBuilder creates an empty catalog builder.
func NewBuilder() *Builder {
	return &Builder{
		defs:    make(map[string]*Definition),
		abbrevs: make(map[rune]*Definition),
		subs:    make(map[string]*Builder),
	}
}

func (b *Builder) register(def Definition) (*Definition, error) {
	if b.frozen != nil {
		return nil, errors.New("catalog builder already frozen")
	}
	if def.Name == "" {
		return nil, errors.New("option name must not be empty")
	}
	if _, exists := b.defs[def.Name]; exists {
		return nil, &DuplicateError{Name: def.Name}
	}
	if def.Abbrev != 0 {
		if _, exists := b.abbrevs[def.Abbrev]; exists {
			return nil, &DuplicateError{Name: def.Name, Abbrev: def.Abbrev}
		}
	}

	d := def
	b.defs[d.Name] = &d
	b.order = append(b.order, d.Name)
	if d.Abbrev != 0 {
		b.abbrevs[d.Abbrev] = &d
	}
	return &d, nil
}

// Register adds a Flag or KeyValue definition. Commands go through Command
// instead, since they own a nested builder. It fails with a DuplicateError
// when the name or abbreviation is already taken.
func (b *Builder) Register(def Definition) error {
	if def.Kind == KindCommand {
		return fmt.Errorf("command %q must be registered via Builder.Command", def.Name)
	}
	if def.Default != "" && def.Kind != KindKeyValue {
		return fmt.Errorf("option %q: only keyvalue options may carry a default", def.Name)
	}
	_, err := b.register(def)
	return err
}

// Command registers a Command definition and returns the builder for its
// nested catalog. Commands carry no abbreviation and no default.
func (b *Builder) Command(def Definition) (*Builder, error) {
	if def.Abbrev != 0 {
		return nil, fmt.Errorf("command %q must not declare an abbreviation", def.Name)
	}
	if def.Default != "" {
		return nil, fmt.Errorf("command %q must not declare a default value", def.Name)
	}
	def.Kind = KindCommand
	if _, err := b.register(def); err != nil {
		return nil, err
	}
	sub := NewBuilder()
	b.subs[def.Name] = sub
	return sub, nil
}

// Freeze finalizes the builder and every nested command builder, returning
// the immutable catalog. Further registration attempts fail. Freeze is
// idempotent.
func (b *Builder) Freeze() *Catalog {
	if b.frozen != nil {
		return b.frozen
	}
	c := &Catalog{
		defs:    b.defs,
		abbrevs: b.abbrevs,
		order:   b.order,
	}
	b.frozen = c
	for name, sub := range b.subs {
		b.defs[name].sub = sub.Freeze()
	}
	return c
}
