package solidity

import "fmt"

// MalformedASTError reports an AST that lacks the fields needed to locate imports.
type MalformedASTError struct {
	File   string
	Index  int
	Reason string
}

func (e *MalformedASTError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("malformed AST: %s", e.Reason)
	}
	if e.Index < 0 {
		return fmt.Sprintf("malformed AST for %s: %s", e.File, e.Reason)
	}
	return fmt.Sprintf("malformed AST for %s: node %d: %s", e.File, e.Index, e.Reason)
}

// ExtractImports returns the raw import specifiers declared by unit, in source order.
// Duplicate imports are returned as many times as they appear.
func ExtractImports(unit *SourceUnit) ([]string, error) {
	if unit == nil {
		return nil, &MalformedASTError{Index: -1, Reason: "AST is missing"}
	}

	var imports []string
	for i, node := range unit.Nodes {
		if node.NodeType == nil {
			return nil, &MalformedASTError{File: unit.AbsolutePath, Index: i, Reason: "missing nodeType"}
		}
		if !node.IsImport() {
			continue
		}
		if node.File == nil {
			return nil, &MalformedASTError{File: unit.AbsolutePath, Index: i, Reason: "import directive has no file"}
		}
		imports = append(imports, *node.File)
	}

	return imports, nil
}
