// Package catalog holds the legal option definitions for one scope level
// of a command line.
//
// A catalog is assembled through a Builder, which is the only place where
// registration (and therefore duplicate detection) happens. Freezing the
// builder produces an immutable Catalog that only answers lookups. This
// split makes the single-writer rule structural: once parsing starts there
// is no API left that could mutate a catalog.
//
// Command definitions own a nested catalog of their own sub-options; that
// nesting is what gives the parsed context its tree shape.
package catalog
