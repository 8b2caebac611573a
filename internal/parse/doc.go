// Package parse drives a full parse of an argument vector: lexical shapes
// from the token package are resolved against the active catalog chain and
// fed into a scope tree, one session per argv.
//
// Parsing is fail-fast. The first classification failure aborts the whole
// session and is surfaced as a single *Error carrying the offending argv
// index; no partial tree is ever returned, because a half-built option tree
// is unsafe to query.
package parse
