package depgraph

import "github.com/LegacyCodeHQ/solflat/depgraph/solidity"

// FileRecord is one project file: the AST produced by the compiler and its raw text.
type FileRecord struct {
	AST     *solidity.SourceUnit
	Content string
}

// FileMap maps file identifiers to their records for a single flatten operation.
type FileMap map[string]FileRecord

// Contains reports whether id has a record.
func (m FileMap) Contains(id string) bool {
	_, ok := m[id]
	return ok
}

// Sources returns the raw text of every file keyed by identifier.
func (m FileMap) Sources() map[string]string {
	sources := make(map[string]string, len(m))
	for id, record := range m {
		sources[id] = record.Content
	}
	return sources
}
