// Package flatten concatenates a Solidity project into one dependency-ordered file.
package flatten

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/solflat/depgraph/solidity"
)

// MissingFileError reports a file in the flatten order with no source text.
type MissingFileError struct {
	File string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("no source text for %s", e.File)
}

// Header returns the comment line that introduces a file's block in flattened output.
func Header(file string) string {
	return "// File: " + file
}

// Flatten concatenates the import-stripped text of every file in order, each preceded by
// its header. The output is built only once every file has been found.
func Flatten(order []string, sources map[string]string) (string, error) {
	var sb strings.Builder
	for _, file := range order {
		content, ok := sources[file]
		if !ok {
			return "", &MissingFileError{File: file}
		}
		sb.WriteString(Header(file))
		sb.WriteString("\n\n")
		sb.WriteString(solidity.StripImports(content))
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}
