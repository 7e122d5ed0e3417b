package solidity

import "regexp"

// importDeclaration matches an import statement through its terminating semicolon, so
// declarations split across lines are removed whole. Leading whitespace, including blank
// lines directly above the statement, goes with it; the line break after it stays.
var importDeclaration = regexp.MustCompile(`(?m)^\s*import[\s"'{*][^;]*;.*$`)

// StripImports deletes every import declaration from text and leaves the rest untouched.
func StripImports(text string) string {
	return importDeclaration.ReplaceAllString(text, "")
}
