package depgraph

import (
	"fmt"
	"strings"
)

// DepthLimitError reports an import chain longer than the configured traversal limit.
type DepthLimitError struct {
	Limit int
	Chain []string
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("import chain exceeds depth limit %d: %s", e.Limit, strings.Join(e.Chain, " -> "))
}

// BuildOption configures BuildDependencyGraph.
type BuildOption func(*buildOptions)

type buildOptions struct {
	maxDepth int
}

// WithMaxDepth bounds the number of files in an import chain, target included.
// Zero or less means unbounded.
func WithMaxDepth(depth int) BuildOption {
	return func(o *buildOptions) {
		o.maxDepth = depth
	}
}

// BuildDependencyGraph traverses the imports of target depth-first and records a depends-on
// edge the first time each file is reached. A file that has already been visited is skipped,
// so shared dependencies are traversed once and import cycles terminate. Every import must
// resolve to a file in files; an unresolved import fails the whole build.
func BuildDependencyGraph(target string, files FileMap, opts ...BuildOption) (*DependencyGraph, error) {
	options := buildOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if !files.Contains(target) {
		return nil, &UnresolvedImportError{Specifier: target, Resolved: target}
	}

	graph, err := newDependencyGraph(target)
	if err != nil {
		return nil, err
	}

	ctx := newTraversalContext(target, files)
	if err := ctx.enter(target); err != nil {
		return nil, err
	}

	for !ctx.done() {
		current := ctx.top()
		specifier, ok := current.nextImport()
		if !ok {
			ctx.pop()
			continue
		}

		resolved, err := files.Resolve(current.file, specifier)
		if err != nil {
			return nil, err
		}

		if ctx.visited.contains(resolved) {
			if err := graph.addImport(current.file, resolved); err != nil {
				return nil, err
			}
			continue
		}

		if options.maxDepth > 0 && ctx.depth() >= options.maxDepth {
			return nil, &DepthLimitError{Limit: options.maxDepth, Chain: append(ctx.chain(), resolved)}
		}

		ctx.visited.add(resolved)
		if err := graph.addDependency(current.file, resolved); err != nil {
			return nil, err
		}
		if err := ctx.enter(resolved); err != nil {
			return nil, err
		}
	}

	return graph, nil
}
