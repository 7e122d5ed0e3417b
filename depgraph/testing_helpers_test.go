package depgraph_test

import (
	"fmt"

	"github.com/LegacyCodeHQ/solflat/depgraph"
	"github.com/LegacyCodeHQ/solflat/depgraph/solidity"
)

// fileMap builds a file map where each file imports the given specifiers.
func fileMap(imports map[string][]string) depgraph.FileMap {
	files := make(depgraph.FileMap, len(imports))
	for id, specifiers := range imports {
		unit := solidity.NewSourceUnit(specifiers...)
		unit.AbsolutePath = id
		files[id] = depgraph.FileRecord{
			AST:     unit,
			Content: fmt.Sprintf("contract %s {}", id),
		}
	}
	return files
}

func indexOf(items []string, item string) int {
	for i, candidate := range items {
		if candidate == item {
			return i
		}
	}
	return -1
}
