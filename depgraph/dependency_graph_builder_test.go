package depgraph_test

import (
	"testing"

	"github.com/LegacyCodeHQ/solflat/depgraph"
	"github.com/LegacyCodeHQ/solflat/depgraph/solidity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDependencyGraph_NoImports(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": nil,
		"B.sol": nil,
	})

	graph, err := depgraph.BuildDependencyGraph("A.sol", files)

	require.NoError(t, err)
	assert.True(t, graph.IsEmpty())
	assert.Equal(t, []string{"A.sol"}, graph.Files())
	assert.Equal(t, "A.sol", graph.Target())
}

func TestBuildDependencyGraph_LinearChain(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": {"./B.sol"},
		"B.sol": {"./C.sol"},
		"C.sol": nil,
	})

	graph, err := depgraph.BuildDependencyGraph("A.sol", files)

	require.NoError(t, err)
	assert.Equal(t, []string{"A.sol", "B.sol", "C.sol"}, graph.Files())
	assert.Equal(t, []depgraph.Edge{
		{From: "A.sol", To: "B.sol"},
		{From: "B.sol", To: "C.sol"},
	}, graph.Edges())
}

func TestBuildDependencyGraph_Diamond(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": {"./B.sol", "./C.sol"},
		"B.sol": {"./D.sol"},
		"C.sol": {"./D.sol"},
		"D.sol": nil,
	})

	graph, err := depgraph.BuildDependencyGraph("A.sol", files)

	require.NoError(t, err)
	assert.Equal(t, []string{"A.sol", "B.sol", "D.sol", "C.sol"}, graph.Files())
	assert.True(t, graph.HasEdge("B.sol", "D.sol"))
	assert.False(t, graph.HasEdge("C.sol", "D.sol"), "second import of a visited file adds no edge")
	assert.Equal(t, []string{"B.sol", "C.sol"}, graph.Dependencies("A.sol"))
}

func TestBuildDependencyGraph_PreOrderDescendsBeforeNextImport(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": {"./B.sol", "./C.sol"},
		"B.sol": {"./C.sol"},
		"C.sol": nil,
	})

	graph, err := depgraph.BuildDependencyGraph("A.sol", files)

	require.NoError(t, err)
	assert.Equal(t, []string{"A.sol", "B.sol", "C.sol"}, graph.Files())
	assert.True(t, graph.HasEdge("B.sol", "C.sol"))
	assert.False(t, graph.HasEdge("A.sol", "C.sol"))
}

func TestBuildDependencyGraph_DuplicateImports(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": {"./B.sol", "./B.sol", "B.sol"},
		"B.sol": nil,
	})

	graph, err := depgraph.BuildDependencyGraph("A.sol", files)

	require.NoError(t, err)
	assert.Equal(t, []string{"B.sol"}, graph.Dependencies("A.sol"))
	assert.Len(t, graph.Edges(), 1)
}

func TestBuildDependencyGraph_Cycle(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": {"./B.sol"},
		"B.sol": {"./A.sol"},
	})

	graph, err := depgraph.BuildDependencyGraph("A.sol", files)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A.sol", "B.sol"}, graph.Files())
	assert.Equal(t, []depgraph.Edge{{From: "A.sol", To: "B.sol"}}, graph.Edges())

	cycles, err := graph.Cycles()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A.sol", "B.sol"}}, cycles)
}

func TestBuildDependencyGraph_SelfImport(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": {"./A.sol"},
	})

	graph, err := depgraph.BuildDependencyGraph("A.sol", files)

	require.NoError(t, err)
	assert.True(t, graph.IsEmpty())

	cycles, err := graph.Cycles()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A.sol"}}, cycles)
}

func TestBuildDependencyGraph_AcyclicGraphHasNoCycles(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": {"./B.sol", "./C.sol"},
		"B.sol": {"./C.sol"},
		"C.sol": nil,
	})

	graph, err := depgraph.BuildDependencyGraph("A.sol", files)
	require.NoError(t, err)

	cycles, err := graph.Cycles()
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

func TestBuildDependencyGraph_UnresolvedImport(t *testing.T) {
	files := fileMap(map[string][]string{
		"contracts/A.sol": {"./B.sol"},
		"contracts/B.sol": {"../lib/Missing.sol"},
	})

	graph, err := depgraph.BuildDependencyGraph("contracts/A.sol", files)

	assert.Nil(t, graph)
	var unresolved *depgraph.UnresolvedImportError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "contracts/B.sol", unresolved.Importer)
	assert.Equal(t, "lib/Missing.sol", unresolved.Resolved)
}

func TestBuildDependencyGraph_MissingTarget(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": nil,
	})

	_, err := depgraph.BuildDependencyGraph("Missing.sol", files)

	var unresolved *depgraph.UnresolvedImportError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, `file "Missing.sol" not found in compilation result`, err.Error())
}

func TestBuildDependencyGraph_MalformedAST(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": {"./B.sol"},
	})
	files["B.sol"] = depgraph.FileRecord{Content: "contract B {}"}

	_, err := depgraph.BuildDependencyGraph("A.sol", files)

	var malformed *solidity.MalformedASTError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "failed to extract imports from B.sol")
}

func TestBuildDependencyGraph_MaxDepth(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": {"./B.sol"},
		"B.sol": {"./C.sol"},
		"C.sol": {"./D.sol"},
		"D.sol": nil,
	})

	_, err := depgraph.BuildDependencyGraph("A.sol", files, depgraph.WithMaxDepth(3))

	var depthErr *depgraph.DepthLimitError
	require.ErrorAs(t, err, &depthErr)
	assert.Equal(t, []string{"A.sol", "B.sol", "C.sol", "D.sol"}, depthErr.Chain)

	graph, err := depgraph.BuildDependencyGraph("A.sol", files, depgraph.WithMaxDepth(4))
	require.NoError(t, err)
	assert.Len(t, graph.Files(), 4)
}

func TestBuildDependencyGraph_DeepChainDoesNotRecurse(t *testing.T) {
	const depth = 20000
	imports := make(map[string][]string, depth)
	for i := 0; i < depth-1; i++ {
		imports[fileName(i)] = []string{"./" + fileName(i+1)}
	}
	imports[fileName(depth-1)] = nil

	graph, err := depgraph.BuildDependencyGraph(fileName(0), fileMap(imports))

	require.NoError(t, err)
	assert.Len(t, graph.Files(), depth)
	order := depgraph.Order(graph)
	assert.Equal(t, fileName(depth-1), order[0])
	assert.Equal(t, fileName(0), order[depth-1])
}

func TestImportChainAndImporters(t *testing.T) {
	files := fileMap(map[string][]string{
		"A.sol": {"./B.sol", "./C.sol"},
		"B.sol": {"./D.sol"},
		"C.sol": {"./D.sol"},
		"D.sol": nil,
	})

	graph, err := depgraph.BuildDependencyGraph("A.sol", files)
	require.NoError(t, err)

	assert.Equal(t, []string{"A.sol", "B.sol", "D.sol"}, depgraph.ImportChain(graph, "D.sol"))
	assert.Equal(t, []string{"A.sol"}, depgraph.ImportChain(graph, "A.sol"))
	assert.Nil(t, depgraph.ImportChain(graph, "Missing.sol"))

	importers, err := depgraph.Importers(graph, "D.sol")
	require.NoError(t, err)
	assert.Equal(t, []string{"B.sol", "C.sol"}, importers)
}
