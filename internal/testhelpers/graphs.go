// Package testhelpers builds compilation fixtures for tests.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/LegacyCodeHQ/solflat/compilation"
	"github.com/LegacyCodeHQ/solflat/depgraph"
	"github.com/LegacyCodeHQ/solflat/depgraph/solidity"
)

// Result builds a compilation result in which every file imports the given specifiers.
// Each file's text is its import statements followed by an empty contract named after it.
func Result(target string, imports map[string][]string) compilation.Result {
	result := compilation.Result{
		Target:  target,
		Sources: make(map[string]string, len(imports)),
		ASTs:    make(map[string]*solidity.SourceUnit, len(imports)),
	}
	for id, specifiers := range imports {
		var sb strings.Builder
		for _, specifier := range specifiers {
			sb.WriteString("import \"" + specifier + "\";\n")
		}
		sb.WriteString("contract " + contractName(id) + " {}\n")
		unit := solidity.NewSourceUnit(specifiers...)
		unit.AbsolutePath = id
		result.Sources[id] = sb.String()
		result.ASTs[id] = unit
	}
	return result
}

// Graph builds the dependency graph of target from the given import relation.
func Graph(t *testing.T, target string, imports map[string][]string) *depgraph.DependencyGraph {
	t.Helper()
	g, err := depgraph.BuildDependencyGraph(target, Result(target, imports).FileMap())
	if err != nil {
		t.Fatalf("depgraph.BuildDependencyGraph() error = %v", err)
	}
	return g
}

func contractName(id string) string {
	name := id[strings.LastIndex(id, "/")+1:]
	return strings.TrimSuffix(name, ".sol")
}
