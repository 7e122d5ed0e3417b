package depgraph

import (
	"errors"
	"fmt"
	"sort"

	graphlib "github.com/dominikbraun/graph"
)

// Edge is a directed depends-on relation: From imports To.
type Edge struct {
	From string
	To   string
}

// DependencyGraph is the depends-on relation discovered by traversing imports from a target file.
//
// Ordering edges are recorded only the first time a file is reached, so the ordering edges form
// a tree rooted at the target. Every resolved import, including those skipped because the file
// was already visited, is kept separately in the import relation and is used for cycle reporting.
type DependencyGraph struct {
	target  string
	graph   graphlib.Graph[string, string]
	imports graphlib.Graph[string, string]
	files   []string
	index   map[string]int
	deps    map[string][]string
	parents map[string]string
}

func newDependencyGraph(target string) (*DependencyGraph, error) {
	g := &DependencyGraph{
		target:  target,
		graph:   graphlib.New(graphlib.StringHash, graphlib.Directed()),
		imports: graphlib.New(graphlib.StringHash, graphlib.Directed()),
		index:   make(map[string]int),
		deps:    make(map[string][]string),
		parents: make(map[string]string),
	}
	if err := g.addFile(target); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *DependencyGraph) addFile(file string) error {
	if err := g.graph.AddVertex(file); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return fmt.Errorf("failed to add %s to dependency graph: %w", file, err)
	}
	if err := g.imports.AddVertex(file); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return fmt.Errorf("failed to add %s to import relation: %w", file, err)
	}
	if _, ok := g.index[file]; !ok {
		g.index[file] = len(g.files)
		g.files = append(g.files, file)
	}
	return nil
}

// addDependency records a newly discovered file together with the edge that reached it.
func (g *DependencyGraph) addDependency(from, to string) error {
	if err := g.addFile(to); err != nil {
		return err
	}
	if err := g.graph.AddEdge(from, to); err != nil {
		if errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to add dependency %s -> %s: %w", from, to, err)
	}
	g.deps[from] = append(g.deps[from], to)
	g.parents[to] = from
	return g.addImport(from, to)
}

// addImport records a resolved import without affecting ordering.
func (g *DependencyGraph) addImport(from, to string) error {
	if err := g.imports.AddEdge(from, to); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
		return fmt.Errorf("failed to record import %s -> %s: %w", from, to, err)
	}
	return nil
}

// Target returns the file the graph was built from.
func (g *DependencyGraph) Target() string {
	return g.target
}

// Files returns every visited file in discovery order, target first.
func (g *DependencyGraph) Files() []string {
	return append([]string(nil), g.files...)
}

// Contains reports whether file was visited.
func (g *DependencyGraph) Contains(file string) bool {
	_, ok := g.index[file]
	return ok
}

// Dependencies returns the files that file depends on, in the order they were discovered.
func (g *DependencyGraph) Dependencies(file string) []string {
	return append([]string(nil), g.deps[file]...)
}

// HasEdge reports whether the ordering edge from -> to exists.
func (g *DependencyGraph) HasEdge(from, to string) bool {
	_, err := g.graph.Edge(from, to)
	return err == nil
}

// Edges returns all ordering edges, grouped by importer in discovery order.
func (g *DependencyGraph) Edges() []Edge {
	var edges []Edge
	for _, from := range g.files {
		for _, to := range g.deps[from] {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// IsEmpty reports whether the graph has no edges.
func (g *DependencyGraph) IsEmpty() bool {
	size, err := g.graph.Size()
	return err == nil && size == 0
}

// Cycles returns the groups of files that import each other, directly or transitively.
// Each group lists its files in discovery order; groups are ordered by their first file.
func (g *DependencyGraph) Cycles() ([][]string, error) {
	components, err := graphlib.StronglyConnectedComponents(g.imports)
	if err != nil {
		return nil, fmt.Errorf("failed to compute import cycles: %w", err)
	}

	var cycles [][]string
	for _, component := range components {
		if len(component) == 1 {
			if _, err := g.imports.Edge(component[0], component[0]); err != nil {
				continue
			}
		}
		cycle := append([]string(nil), component...)
		sort.Slice(cycle, func(i, j int) bool {
			return g.index[cycle[i]] < g.index[cycle[j]]
		})
		cycles = append(cycles, cycle)
	}

	sort.Slice(cycles, func(i, j int) bool {
		return g.index[cycles[i][0]] < g.index[cycles[j][0]]
	})
	return cycles, nil
}
