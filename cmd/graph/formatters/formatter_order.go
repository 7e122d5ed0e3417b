package formatters

import (
	"strings"

	"github.com/LegacyCodeHQ/solflat/depgraph"
)

// OrderFormatter lists files in flatten order, one per line.
type OrderFormatter struct{}

// Format returns the dependency-first order of g.
func (f *OrderFormatter) Format(g *depgraph.DependencyGraph, _ RenderOptions) (string, error) {
	return strings.Join(depgraph.Order(g), "\n"), nil
}
