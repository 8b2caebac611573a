// Package render turns parsed scope trees and option catalogs into
// console output. It sits outside the parser core: the core only exposes
// enumerable catalogs and a queryable tree, and this package decides how
// they look.
package render
