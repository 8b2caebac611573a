package parse

import "fmt"

// ErrorKind enumerates the ways a parse can fail. Every consumption site
// matches it exhaustively.
type ErrorKind int

const (
	// MalformedOption marks an illegal lexical shape: too many dashes,
	// an empty body, or non-letters in a short option.
	MalformedOption ErrorKind = iota
	// UnknownCommand marks a dash-free token with no command definition
	// in the active catalog.
	UnknownCommand
	// UnknownFlag marks an unresolvable short-form letter.
	UnknownFlag
	// UnknownOption marks an unresolvable long name.
	UnknownOption
	// AmbiguousCluster marks a keyvalue abbreviation before the last
	// position of a short-flag cluster.
	AmbiguousCluster
	// MissingValue marks a keyvalue option at the end of argv, with no
	// token left to capture.
	MissingValue
	// LimitExceeded marks a tripped depth or token guard.
	LimitExceeded
)

// String returns the stable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case MalformedOption:
		return "malformed option"
	case UnknownCommand:
		return "unknown command"
	case UnknownFlag:
		return "unknown flag"
	case UnknownOption:
		return "unknown option"
	case AmbiguousCluster:
		return "ambiguous cluster"
	case MissingValue:
		return "missing value"
	case LimitExceeded:
		return "limit exceeded"
	default:
		return fmt.Sprintf("parse.ErrorKind(%d)", int(k))
	}
}

// Error is the single terminal failure of a parse session. It identifies
// the offending raw token by argv index.
type Error struct {
	Kind   ErrorKind
	Index  int
	Token  string
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s at argument %d (%q)", e.Kind, e.Index, e.Token)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
