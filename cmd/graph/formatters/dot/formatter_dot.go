package dot

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/LegacyCodeHQ/solflat/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/solflat/depgraph"
)

// Formatter formats dependency graphs as Graphviz DOT.
type Formatter struct{}

// Format converts the dependency graph to Graphviz DOT format.
// Nodes are listed in discovery order and edges in the order they were recorded.
func (f *Formatter) Format(g *depgraph.DependencyGraph, opts formatters.RenderOptions) (string, error) {
	cycles, err := g.Cycles()
	if err != nil {
		return "", err
	}
	inCycle := formatters.CycleMembers(cycles)

	files := g.Files()
	names := formatters.BuildNodeNames(files)
	rootColors := formatters.RootColors(files)

	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=%q;\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}
	sb.WriteString("\n")

	for _, file := range files {
		color := "white"
		if inCycle[file] {
			color = "lightcoral"
		} else if c, ok := rootColors[formatters.PathRoot(file)]; ok {
			color = c
		}

		style := "filled"
		if file == g.Target() {
			style = "filled,bold"
		}

		sb.WriteString(fmt.Sprintf("  %q [style=%q, fillcolor=%s, tooltip=%q];\n", names[file], style, color, file))
	}

	edges := g.Edges()
	if len(edges) > 0 {
		sb.WriteString("\n")
	}
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("  %q -> %q;\n", names[e.From], names[e.To]))
	}

	sb.WriteString("}")
	return sb.String(), nil
}

// GenerateURL creates a GraphvizOnline URL with the DOT graph embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	encoded := url.PathEscape(output)
	return fmt.Sprintf("https://dreampuf.github.io/GraphvizOnline/?engine=dot#%s", encoded), true
}
