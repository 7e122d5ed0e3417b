package formatters

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/solflat/depgraph"
)

// JSONFormatter formats dependency graphs as JSON.
type JSONFormatter struct{}

type jsonEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type jsonGraph struct {
	Label  string     `json:"label,omitempty"`
	Target string     `json:"target"`
	Files  []string   `json:"files"`
	Order  []string   `json:"order"`
	Edges  []jsonEdge `json:"edges"`
	Cycles [][]string `json:"cycles"`
}

// Format converts the dependency graph to JSON format.
func (f *JSONFormatter) Format(g *depgraph.DependencyGraph, opts RenderOptions) (string, error) {
	cycles, err := g.Cycles()
	if err != nil {
		return "", err
	}
	if cycles == nil {
		cycles = [][]string{}
	}

	edges := make([]jsonEdge, 0)
	for _, e := range g.Edges() {
		edges = append(edges, jsonEdge{From: e.From, To: e.To})
	}

	data, err := json.MarshalIndent(jsonGraph{
		Label:  opts.Label,
		Target: g.Target(),
		Files:  g.Files(),
		Order:  depgraph.Order(g),
		Edges:  edges,
		Cycles: cycles,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
