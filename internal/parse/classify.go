package parse

import (
	"fmt"

	"github.com/vk/argscope/internal/catalog"
	"github.com/vk/argscope/internal/scope"
	"github.com/vk/argscope/internal/suggest"
	"github.com/vk/argscope/internal/token"
)

// resolution is the outcome of classifying one raw token: the args it
// produced and how many argv entries it consumed (2 when a value followed).
type resolution struct {
	args    []*scope.Arg
	advance int
}

// lookupLong resolves a long name against the catalog chain: the active
// catalog unconditionally, ancestor catalogs only for inheritable
// definitions.
func lookupLong(chain []*catalog.Catalog, name string) (*catalog.Definition, bool) {
	for i, c := range chain {
		if def, ok := c.Lookup(name); ok {
			if i == 0 || def.Inheritable {
				return def, true
			}
		}
	}
	return nil, false
}

// lookupAbbrev is lookupLong for single-letter short forms.
func lookupAbbrev(chain []*catalog.Catalog, r rune) (*catalog.Definition, bool) {
	for i, c := range chain {
		if def, ok := c.LookupAbbrev(r); ok {
			if i == 0 || def.Inheritable {
				return def, true
			}
		}
	}
	return nil, false
}

// knownNames collects every resolvable long name on the chain, for
// near-miss suggestions in unknown-name errors.
func knownNames(chain []*catalog.Catalog, kind catalog.Kind, anyKind bool) []string {
	var names []string
	for i, c := range chain {
		for _, def := range c.Options() {
			if i > 0 && !def.Inheritable {
				continue
			}
			if anyKind || def.Kind == kind {
				names = append(names, def.Name)
			}
		}
	}
	return names
}

func hintFor(body string, chain []*catalog.Catalog, kind catalog.Kind, anyKind bool) string {
	if near, ok := suggest.Closest(body, knownNames(chain, kind, anyKind)); ok {
		return fmt.Sprintf("did you mean %q?", near)
	}
	return ""
}

// classify resolves one lexical shape against the active catalog chain.
// rest holds the argv entries after the current one; a keyvalue resolution
// captures rest[0] and advances the cursor by 2.
func (s *Session) classify(shape token.Shape, index int, rest []string, chain []*catalog.Catalog) (resolution, *Error) {
	switch shape.DashCount {
	case 0:
		return s.classifyCommand(shape, index, chain)
	case 1:
		if shape.IsCluster() {
			return s.classifyCluster(shape, index, rest, chain)
		}
		return s.classifyShort(shape, index, rest, chain)
	case 2:
		return s.classifyLong(shape, index, rest, chain)
	default:
		// token.Classify never yields another dash count.
		return resolution{}, &Error{Kind: MalformedOption, Index: index, Token: shape.Raw}
	}
}

func (s *Session) classifyCommand(shape token.Shape, index int, chain []*catalog.Catalog) (resolution, *Error) {
	def, ok := lookupLong(chain, shape.Body)
	if !ok {
		if s.AllowFreeForm {
			arg := &scope.Arg{Kind: catalog.KindCommand, Name: shape.Body, Index: index}
			return resolution{args: []*scope.Arg{arg}, advance: 1}, nil
		}
		return resolution{}, &Error{
			Kind:   UnknownCommand,
			Index:  index,
			Token:  shape.Raw,
			Detail: hintFor(shape.Body, chain, catalog.KindCommand, false),
		}
	}
	if def.Kind != catalog.KindCommand {
		return resolution{}, &Error{
			Kind:   UnknownCommand,
			Index:  index,
			Token:  shape.Raw,
			Detail: fmt.Sprintf("%q is a %s, not a command", def.Name, def.Kind),
		}
	}
	arg := &scope.Arg{Kind: catalog.KindCommand, Name: def.Name, Def: def, Index: index}
	return resolution{args: []*scope.Arg{arg}, advance: 1}, nil
}

func (s *Session) classifyShort(shape token.Shape, index int, rest []string, chain []*catalog.Catalog) (resolution, *Error) {
	r := []rune(shape.Body)[0]
	def, ok := lookupAbbrev(chain, r)
	if !ok {
		return resolution{}, &Error{Kind: UnknownFlag, Index: index, Token: shape.Raw}
	}
	switch def.Kind {
	case catalog.KindFlag:
		arg := &scope.Arg{Kind: catalog.KindFlag, Name: def.Name, Def: def, Index: index}
		return resolution{args: []*scope.Arg{arg}, advance: 1}, nil
	case catalog.KindKeyValue:
		if len(rest) == 0 {
			return resolution{}, &Error{
				Kind:   MissingValue,
				Index:  index,
				Token:  shape.Raw,
				Detail: fmt.Sprintf("option %q requires a value", def.Name),
			}
		}
		arg := &scope.Arg{Kind: catalog.KindKeyValue, Name: def.Name, Def: def, Value: rest[0], Index: index}
		return resolution{args: []*scope.Arg{arg}, advance: 2}, nil
	case catalog.KindCommand:
		// Builders reject abbreviations on commands, so an abbreviation
		// can never resolve to one.
		return resolution{}, &Error{Kind: UnknownFlag, Index: index, Token: shape.Raw}
	default:
		return resolution{}, &Error{Kind: UnknownFlag, Index: index, Token: shape.Raw}
	}
}

func (s *Session) classifyCluster(shape token.Shape, index int, rest []string, chain []*catalog.Catalog) (resolution, *Error) {
	runes := []rune(shape.Body)
	res := resolution{advance: 1}
	for i, r := range runes {
		def, ok := lookupAbbrev(chain, r)
		if !ok {
			return resolution{}, &Error{
				Kind:   UnknownFlag,
				Index:  index,
				Token:  shape.Raw,
				Detail: fmt.Sprintf("unknown flag %q in cluster", string(r)),
			}
		}
		switch def.Kind {
		case catalog.KindFlag:
			res.args = append(res.args, &scope.Arg{Kind: catalog.KindFlag, Name: def.Name, Def: def, Index: index})
		case catalog.KindKeyValue:
			// tar-style: only the final letter may take a value, and the
			// value is the next argv entry, never the cluster remainder.
			if i != len(runes)-1 {
				return resolution{}, &Error{
					Kind:   AmbiguousCluster,
					Index:  index,
					Token:  shape.Raw,
					Detail: fmt.Sprintf("option %q takes a value but is not last in the cluster", def.Name),
				}
			}
			if len(rest) == 0 {
				return resolution{}, &Error{
					Kind:   MissingValue,
					Index:  index,
					Token:  shape.Raw,
					Detail: fmt.Sprintf("option %q requires a value", def.Name),
				}
			}
			res.args = append(res.args, &scope.Arg{Kind: catalog.KindKeyValue, Name: def.Name, Def: def, Value: rest[0], Index: index})
			res.advance = 2
		case catalog.KindCommand:
			return resolution{}, &Error{
				Kind:   UnknownFlag,
				Index:  index,
				Token:  shape.Raw,
				Detail: fmt.Sprintf("%q in cluster is a command", string(r)),
			}
		}
	}
	return res, nil
}

func (s *Session) classifyLong(shape token.Shape, index int, rest []string, chain []*catalog.Catalog) (resolution, *Error) {
	def, ok := lookupLong(chain, shape.Body)
	if !ok {
		return resolution{}, &Error{
			Kind:   UnknownOption,
			Index:  index,
			Token:  shape.Raw,
			Detail: hintFor(shape.Body, chain, 0, true),
		}
	}
	switch def.Kind {
	case catalog.KindFlag:
		arg := &scope.Arg{Kind: catalog.KindFlag, Name: def.Name, Def: def, Index: index}
		return resolution{args: []*scope.Arg{arg}, advance: 1}, nil
	case catalog.KindKeyValue:
		if len(rest) == 0 {
			return resolution{}, &Error{
				Kind:   MissingValue,
				Index:  index,
				Token:  shape.Raw,
				Detail: fmt.Sprintf("option %q requires a value", def.Name),
			}
		}
		arg := &scope.Arg{Kind: catalog.KindKeyValue, Name: def.Name, Def: def, Value: rest[0], Index: index}
		return resolution{args: []*scope.Arg{arg}, advance: 2}, nil
	case catalog.KindCommand:
		// "--subcommand" opens a scope exactly like the bare form.
		arg := &scope.Arg{Kind: catalog.KindCommand, Name: def.Name, Def: def, Index: index}
		return resolution{args: []*scope.Arg{arg}, advance: 1}, nil
	default:
		return resolution{}, &Error{Kind: UnknownOption, Index: index, Token: shape.Raw}
	}
}
