package simplifier

import (
	"log/slog"
	"math/rand"
	"sort"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/domain"
)

// DefaultMaxDepth bounds the node recursion so a pathological or cyclic
// document cannot blow the stack.
const DefaultMaxDepth = 512

// Parser turns raw design documents into SimplifiedDesign values. A Parser
// is stateless across calls and safe to reuse.
type Parser struct {
	logger   *slog.Logger
	idSource rand.Source
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for per-node warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithRandSource fixes the random source behind style identifiers, making
// output reproducible.
func WithRandSource(src rand.Source) Option {
	return func(p *Parser) {
		p.idSource = src
	}
}

// WithMaxDepth overrides the recursion depth guard.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger:   logging.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse simplifies one raw API document. It accepts both document shapes:
// a whole-file response carrying document.children, and a node-subset
// response carrying a nodes mapping of id to wrapper objects.
func (p *Parser) Parse(data map[string]any) *domain.SimplifiedDesign {
	var tableOpts []StyleTableOption
	if p.idSource != nil {
		tableOpts = append(tableOpts, WithIDSource(p.idSource))
	}
	table := NewStyleTable(tableOpts...)

	roots := p.rootNodes(data)
	nodes := make([]*domain.SimplifiedNode, 0, len(roots))
	for _, root := range roots {
		if parsed := p.parseNode(table, root, nil, 0); parsed != nil {
			nodes = append(nodes, parsed)
		}
	}

	rawComponents, _ := getMap(data, "components")
	rawSets, _ := getMap(data, "componentSets")

	return &domain.SimplifiedDesign{
		Name:          stringOr(data, "name", "Untitled Design"),
		LastModified:  stringOr(data, "lastModified", ""),
		ThumbnailURL:  stringOr(data, "thumbnailUrl", ""),
		Nodes:         nodes,
		Components:    sanitizeComponents(rawComponents, p.logger),
		ComponentSets: sanitizeComponentSets(rawSets, p.logger),
		GlobalVars:    domain.GlobalVars{Styles: table.Styles()},
	}
}

// rootNodes locates the roots to walk. Node-subset responses are iterated
// in sorted key order since Go map order is not stable.
func (p *Parser) rootNodes(data map[string]any) []RawNode {
	if document, ok := getMap(data, "document"); ok {
		if children, okC := getSlice(document, "children"); okC {
			roots := make([]RawNode, 0, len(children))
			for _, raw := range children {
				if child, okM := raw.(map[string]any); okM {
					roots = append(roots, child)
				}
			}
			return roots
		}
		// A document without children is not a file response; a node-subset
		// response may still carry roots under "nodes".
	}

	if nodeMap, ok := getMap(data, "nodes"); ok {
		keys := make([]string, 0, len(nodeMap))
		for key := range nodeMap {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		roots := make([]RawNode, 0, len(keys))
		for _, key := range keys {
			wrapper, okW := getMap(nodeMap, key)
			if !okW {
				continue
			}
			if document, okD := getMap(wrapper, "document"); okD {
				roots = append(roots, document)
			}
		}
		return roots
	}

	p.logger.Warn("no root nodes found in response")
	return nil
}
