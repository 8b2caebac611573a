package parse

import (
	"context"
	"fmt"

	"github.com/vk/argscope/internal/catalog"
	"github.com/vk/argscope/internal/ctxlog"
	"github.com/vk/argscope/internal/scope"
	"github.com/vk/argscope/internal/token"
)

const (
	// DefaultMaxDepth bounds command nesting.
	DefaultMaxDepth = 64
	// DefaultMaxTokens bounds total produced args, cluster expansion
	// included, against pathological input.
	DefaultMaxTokens = 4096
)

// Session parses one argument vector against a frozen root catalog. The
// zero value is not usable; construct with NewSession and adjust the
// exported knobs before Run.
type Session struct {
	// MaxDepth aborts with LimitExceeded once command nesting passes it.
	MaxDepth int
	// MaxTokens aborts with LimitExceeded once the count of raw tokens
	// plus expanded cluster flags passes it.
	MaxTokens int
	// AllowFreeForm records dash-free tokens missing from the catalog as
	// commands with no definition instead of failing. Off by default.
	AllowFreeForm bool
}

// NewSession creates a session with the default guards.
func NewSession() *Session {
	return &Session{
		MaxDepth:  DefaultMaxDepth,
		MaxTokens: DefaultMaxTokens,
	}
}

// Run consumes argv from index 0 — the caller strips the program path —
// and returns the finished scope tree plus the number of raw argv entries
// consumed. The first failure aborts the session; on error the tree is nil.
func (s *Session) Run(ctx context.Context, argv []string, root *catalog.Catalog) (*scope.Tree, int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parse session started.", "argc", len(argv))

	if len(argv) > s.MaxTokens {
		return nil, 0, &Error{
			Kind:   LimitExceeded,
			Index:  s.MaxTokens,
			Token:  argv[s.MaxTokens],
			Detail: fmt.Sprintf("argument vector exceeds %d tokens", s.MaxTokens),
		}
	}

	builder := scope.NewBuilder(root)
	produced := 0

	i := 0
	for i < len(argv) {
		shape, err := token.Classify(argv[i])
		if err != nil {
			return nil, i, &Error{Kind: MalformedOption, Index: i, Token: argv[i], Detail: err.Error()}
		}

		res, perr := s.classify(shape, i, argv[i+1:], builder.Catalogs())
		if perr != nil {
			logger.Debug("Parse session aborted.", "index", perr.Index, "kind", perr.Kind.String())
			return nil, i, perr
		}

		produced += len(res.args)
		if produced > s.MaxTokens {
			return nil, i, &Error{
				Kind:   LimitExceeded,
				Index:  i,
				Token:  argv[i],
				Detail: fmt.Sprintf("expanded argument count exceeds %d", s.MaxTokens),
			}
		}

		for _, arg := range res.args {
			switch arg.Kind {
			case catalog.KindCommand:
				if builder.Depth()+1 > s.MaxDepth {
					return nil, i, &Error{
						Kind:   LimitExceeded,
						Index:  i,
						Token:  argv[i],
						Detail: fmt.Sprintf("command nesting exceeds depth %d", s.MaxDepth),
					}
				}
				builder.Enter(arg)
			case catalog.KindFlag, catalog.KindKeyValue:
				builder.Put(arg)
			}
		}

		i += res.advance
	}

	tree := builder.Finish()
	logger.Debug("Parse session finished.", "consumed", i, "scopes", tree.Len())
	return tree, i, nil
}
