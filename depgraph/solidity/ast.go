package solidity

// NodeTypeImportDirective is the nodeType tag solc assigns to import statements.
const NodeTypeImportDirective = "ImportDirective"

// SourceUnit is the root of a solc compact-JSON AST for one source file.
// Only the fields needed to locate import declarations are decoded.
type SourceUnit struct {
	NodeType     string `json:"nodeType"`
	AbsolutePath string `json:"absolutePath,omitempty"`
	Nodes        []Node `json:"nodes"`
}

// Node is a top-level statement of a SourceUnit.
// NodeType and File are pointers so that absent fields can be told apart from empty ones.
type Node struct {
	ID           int     `json:"id,omitempty"`
	NodeType     *string `json:"nodeType"`
	File         *string `json:"file,omitempty"`
	AbsolutePath string  `json:"absolutePath,omitempty"`
	Src          string  `json:"src,omitempty"`
}

// IsImport reports whether the node is tagged as an import declaration.
func (n Node) IsImport() bool {
	return n.NodeType != nil && *n.NodeType == NodeTypeImportDirective
}

// NewImportNode builds an ImportDirective node for the given raw specifier.
func NewImportNode(file string) Node {
	nodeType := NodeTypeImportDirective
	return Node{NodeType: &nodeType, File: &file}
}

// NewNode builds a non-import node with the given type tag.
func NewNode(nodeType string) Node {
	return Node{NodeType: &nodeType}
}

// NewSourceUnit builds a SourceUnit importing each specifier in order.
func NewSourceUnit(imports ...string) *SourceUnit {
	unit := &SourceUnit{NodeType: "SourceUnit", Nodes: make([]Node, 0, len(imports)+1)}
	unit.Nodes = append(unit.Nodes, NewNode("PragmaDirective"))
	for _, specifier := range imports {
		unit.Nodes = append(unit.Nodes, NewImportNode(specifier))
	}
	return unit
}
