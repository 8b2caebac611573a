// Package scope builds and exposes the tree of option scopes produced by a
// parse: the root holds whatever precedes the first command, and every
// command token opens one nested scope that collects the flags and
// key/value pairs following it.
//
// Nodes live in an arena indexed by position; parent and child links are
// stored as indices, which keeps parent walks O(1) for inherited-option
// resolution without ownership cycles. The tree is mutable only through the
// Builder, which the parse session owns; after Finish the tree is read-only
// and safe to share across goroutines.
package scope
