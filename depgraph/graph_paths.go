package depgraph

// ImportChain returns the chain of imports through which the target pulled in file,
// starting at the target and ending at file. It returns nil if file was never visited.
func ImportChain(g *DependencyGraph, file string) []string {
	if !g.Contains(file) {
		return nil
	}

	var reversed []string
	for current := file; ; {
		reversed = append(reversed, current)
		parent, ok := g.parents[current]
		if !ok {
			break
		}
		current = parent
	}

	chain := make([]string, len(reversed))
	for i, f := range reversed {
		chain[len(reversed)-1-i] = f
	}
	return chain
}

// Importers returns every visited file that imports file, in discovery order,
// whether or not that import contributed an ordering edge.
func Importers(g *DependencyGraph, file string) ([]string, error) {
	predecessors, err := g.imports.PredecessorMap()
	if err != nil {
		return nil, err
	}

	var importers []string
	for _, candidate := range g.files {
		if _, ok := predecessors[file][candidate]; ok {
			importers = append(importers, candidate)
		}
	}
	return importers, nil
}
