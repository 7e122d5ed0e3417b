package formatters

import (
	"sort"
	"strings"
)

// PathRoot returns the first segment of a file identifier, e.g. "@openzeppelin" or "contracts".
func PathRoot(file string) string {
	root, _, found := strings.Cut(strings.TrimPrefix(file, "/"), "/")
	if !found {
		return "."
	}
	return root
}

// RootColors assigns a fill color to every path root when files come from more than one root.
// It returns nil when all files share a root.
func RootColors(files []string) map[string]string {
	availableColors := []string{
		"lightblue", "lightyellow", "mistyrose", "lightsalmon",
		"lightpink", "lavender", "peachpuff", "plum", "powderblue", "khaki",
		"palegoldenrod", "thistle",
	}

	uniqueRoots := make(map[string]bool)
	for _, file := range files {
		uniqueRoots[PathRoot(file)] = true
	}
	if len(uniqueRoots) < 2 {
		return nil
	}

	roots := make([]string, 0, len(uniqueRoots))
	for root := range uniqueRoots {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	colors := make(map[string]string, len(roots))
	for i, root := range roots {
		colors[root] = availableColors[i%len(availableColors)]
	}
	return colors
}

// CycleMembers returns the set of files that take part in an import cycle.
func CycleMembers(cycles [][]string) map[string]bool {
	members := make(map[string]bool)
	for _, cycle := range cycles {
		for _, file := range cycle {
			members[file] = true
		}
	}
	return members
}
