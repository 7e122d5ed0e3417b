package mermaid

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/solflat/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/solflat/depgraph"
)

// Formatter formats dependency graphs as Mermaid.js flowcharts.
type Formatter struct{}

// Format converts the dependency graph to Mermaid.js flowchart format.
func (f *Formatter) Format(g *depgraph.DependencyGraph, opts formatters.RenderOptions) (string, error) {
	cycles, err := g.Cycles()
	if err != nil {
		return "", err
	}

	files := g.Files()
	names := formatters.BuildNodeNames(files)

	var sb strings.Builder

	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}

	sb.WriteString("flowchart LR\n")

	for i, cycle := range cycles {
		parts := make([]string, 0, len(cycle)+1)
		for _, file := range cycle {
			parts = append(parts, names[file])
		}
		parts = append(parts, names[cycle[0]])
		sb.WriteString(fmt.Sprintf("%%%% C%d: %s\n", i+1, strings.Join(parts, " -> ")))
	}

	// Mermaid node IDs can't have dots or special characters.
	nodeIDs := make(map[string]string, len(files))
	for i, file := range files {
		nodeIDs[file] = fmt.Sprintf("n%d", i)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeIDs[file], names[file]))
	}

	for _, e := range g.Edges() {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", nodeIDs[e.From], nodeIDs[e.To]))
	}

	sb.WriteString(fmt.Sprintf("    style %s stroke-width:3px\n", nodeIDs[g.Target()]))
	inCycle := formatters.CycleMembers(cycles)
	for _, file := range files {
		if inCycle[file] {
			sb.WriteString(fmt.Sprintf("    style %s fill:lightcoral\n", nodeIDs[file]))
		}
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}
