package depgraph

import (
	"fmt"
	"path"
	"strings"
)

// UnresolvedImportError reports an import whose resolved identifier is not in the file map.
type UnresolvedImportError struct {
	Importer  string
	Specifier string
	Resolved  string
}

func (e *UnresolvedImportError) Error() string {
	if e.Importer == "" {
		return fmt.Sprintf("file %q not found in compilation result", e.Resolved)
	}
	if e.Specifier == e.Resolved {
		return fmt.Sprintf("unresolved import %q in %s", e.Specifier, e.Importer)
	}
	return fmt.Sprintf("unresolved import %q in %s (resolved to %q)", e.Specifier, e.Importer, e.Resolved)
}

// ResolveImportPath maps a raw import specifier to a file identifier.
// Relative specifiers are joined to the importer's directory and cleaned;
// anything else is already canonical and returned unchanged.
func ResolveImportPath(importer, specifier string) string {
	if !isRelativeSpecifier(specifier) {
		return specifier
	}
	return path.Join(path.Dir(importer), specifier)
}

func isRelativeSpecifier(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

// Resolve resolves specifier against importer and checks the result has a record.
func (m FileMap) Resolve(importer, specifier string) (string, error) {
	resolved := ResolveImportPath(importer, specifier)
	if !m.Contains(resolved) {
		return "", &UnresolvedImportError{Importer: importer, Specifier: specifier, Resolved: resolved}
	}
	return resolved, nil
}
