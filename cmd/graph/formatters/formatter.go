package formatters

import "github.com/LegacyCodeHQ/solflat/depgraph"

// RenderOptions contains optional parameters for rendering dependency graphs.
type RenderOptions struct {
	// Label is an optional title for the graph
	Label string
}

// Formatter is the interface that all graph formatters must implement.
type Formatter interface {
	// Format converts a dependency graph to a formatted string representation.
	Format(g *depgraph.DependencyGraph, opts RenderOptions) (string, error)
}
