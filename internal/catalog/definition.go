package catalog

// Definition describes one legal option within a single catalog. It is
// immutable after the owning builder freezes.
type Definition struct {
	// Name is the long name, unique within its catalog. Never empty.
	Name string
	// Abbrev is the optional single-letter short form. Zero means none.
	// Unique within its catalog when present. Commands carry no abbreviation.
	Abbrev rune
	// Description is free text for option listings.
	Description string
	// Kind tags the definition as Command, Flag or KeyValue.
	Kind Kind
	// Inheritable marks a Flag or KeyValue as resolvable from descendant
	// scopes, both during classification and during later queries.
	Inheritable bool
	// Default is returned by value lookups when a KeyValue was never
	// supplied on the command line. Empty means no default.
	Default string

	sub *Catalog
}

// Sub returns the nested catalog of a Command definition. It is never nil
// for commands; commands declared without sub-options own an empty catalog,
// which rejects every subsequent non-inheritable token.
func (d *Definition) Sub() *Catalog {
	return d.sub
}
