package depgraph

import (
	"fmt"

	"github.com/LegacyCodeHQ/solflat/depgraph/solidity"
)

// visitedSet holds every file already enqueued for traversal.
type visitedSet map[string]struct{}

func (s visitedSet) add(file string) {
	s[file] = struct{}{}
}

func (s visitedSet) contains(file string) bool {
	_, ok := s[file]
	return ok
}

// traversalFrame is one file on the traversal stack with its remaining imports.
type traversalFrame struct {
	file    string
	imports []string
	next    int
}

func (f *traversalFrame) nextImport() (string, bool) {
	if f.next >= len(f.imports) {
		return "", false
	}
	specifier := f.imports[f.next]
	f.next++
	return specifier, true
}

// traversalContext is the state of one depth-first traversal: the visited set
// and an explicit stack standing in for recursion.
type traversalContext struct {
	files   FileMap
	visited visitedSet
	stack   []*traversalFrame
}

func newTraversalContext(target string, files FileMap) *traversalContext {
	visited := make(visitedSet)
	visited.add(target)
	return &traversalContext{
		files:   files,
		visited: visited,
	}
}

// enter extracts the imports of file and pushes it on the stack.
func (c *traversalContext) enter(file string) error {
	imports, err := solidity.ExtractImports(c.files[file].AST)
	if err != nil {
		return fmt.Errorf("failed to extract imports from %s: %w", file, err)
	}
	c.stack = append(c.stack, &traversalFrame{file: file, imports: imports})
	return nil
}

func (c *traversalContext) top() *traversalFrame {
	return c.stack[len(c.stack)-1]
}

func (c *traversalContext) pop() {
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *traversalContext) depth() int {
	return len(c.stack)
}

func (c *traversalContext) done() bool {
	return len(c.stack) == 0
}

// chain returns the files currently on the stack, outermost first.
func (c *traversalContext) chain() []string {
	chain := make([]string, 0, len(c.stack))
	for _, frame := range c.stack {
		chain = append(chain, frame.file)
	}
	return chain
}
