// Package token classifies a single raw argv entry by lexical shape alone:
// how many leading dashes it carries and what its body looks like. It knows
// nothing about catalogs; resolving a shape against the legal options of the
// current scope is the classifier's job.
package token

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrMalformed marks shapes that are illegal regardless of catalog content:
// more than two leading dashes, a dash with no body, or a single-dash body
// containing non-letters.
var ErrMalformed = errors.New("malformed option")

// Shape is the lexical decomposition of one raw argv entry.
type Shape struct {
	// Raw is the entry exactly as it appeared in argv.
	Raw string
	// DashCount is 0 (command candidate), 1 (short form) or 2 (long form).
	DashCount int
	// Body is the entry with its leading dashes stripped.
	Body string
}

// IsCluster reports whether the shape is a concatenated short-flag cluster
// candidate, e.g. "-xvz".
func (s Shape) IsCluster() bool {
	return s.DashCount == 1 && len(s.Body) > 1
}

// Classify decomposes one raw argv entry into its shape. The only failures
// are structural: dash counts above two, empty bodies ("-", "--") and
// non-letter characters in a single-dash body all fail with ErrMalformed.
func Classify(raw string) (Shape, error) {
	dashes := 0
	for dashes < len(raw) && raw[dashes] == '-' {
		dashes++
	}
	if dashes > 2 {
		return Shape{}, fmt.Errorf("%w: %q has %d leading dashes", ErrMalformed, raw, dashes)
	}

	body := raw[dashes:]
	if dashes > 0 && body == "" {
		return Shape{}, fmt.Errorf("%w: %q has no option body", ErrMalformed, raw)
	}
	if raw == "" {
		return Shape{}, fmt.Errorf("%w: empty argument", ErrMalformed)
	}

	if dashes == 1 {
		for _, r := range body {
			if !unicode.IsLetter(r) {
				return Shape{}, fmt.Errorf("%w: short option %q contains non-letter %q", ErrMalformed, raw, string(r))
			}
		}
	}
	return Shape{Raw: raw, DashCount: dashes, Body: body}, nil
}
