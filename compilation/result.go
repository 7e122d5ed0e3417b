package compilation

import (
	"errors"

	"github.com/LegacyCodeHQ/solflat/depgraph"
	"github.com/LegacyCodeHQ/solflat/depgraph/solidity"
)

// ErrNoCompilationAvailable is returned when a flatten is requested before any
// compilation result has been delivered.
var ErrNoCompilationAvailable = errors.New("no compilation result available")

// Result is the output of one compiler run: the file being flattened, the raw text of
// every project file and the AST of every compiled file.
type Result struct {
	Target  string
	Sources map[string]string
	ASTs    map[string]*solidity.SourceUnit
}

// FileMap joins sources and ASTs into one record per file that has source text.
// A file with text but no AST gets a nil AST and fails extraction if it is traversed.
func (r Result) FileMap() depgraph.FileMap {
	files := make(depgraph.FileMap, len(r.Sources))
	for id, content := range r.Sources {
		files[id] = depgraph.FileRecord{
			AST:     r.ASTs[id],
			Content: content,
		}
	}
	return files
}
