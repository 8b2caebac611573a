package catalog

import "fmt"

// Kind discriminates the three option flavors a catalog can hold.
type Kind int

const (
	// KindCommand names an action. A dash-free token resolving to a
	// command opens a new nested scope.
	KindCommand Kind = iota
	// KindFlag is a boolean option, present or absent.
	KindFlag
	// KindKeyValue is an option that consumes the following argv entry
	// verbatim as its string value.
	KindKeyValue
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindFlag:
		return "flag"
	case KindKeyValue:
		return "keyvalue"
	default:
		return fmt.Sprintf("catalog.Kind(%d)", int(k))
	}
}
