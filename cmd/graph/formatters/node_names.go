package formatters

import (
	"path"
	"strings"
)

// BuildNodeNames returns stable, distinct display names for file identifiers.
// Files that share the same base name are disambiguated by increasing path suffix depth;
// files whose paths clean to the same value are named by their raw identifier.
func BuildNodeNames(files []string) map[string]string {
	names := make(map[string]string, len(files))
	groupedByBase := make(map[string][]string, len(files))
	for _, file := range files {
		base := path.Base(file)
		groupedByBase[base] = append(groupedByBase[base], file)
	}

	for base, grouped := range groupedByBase {
		if len(grouped) == 1 {
			names[grouped[0]] = base
			continue
		}

		maxDepth := 1
		for _, file := range grouped {
			maxDepth = max(maxDepth, len(pathParts(file)))
		}

		resolved := false
		for depth := 2; depth <= maxDepth; depth++ {
			if suffixesDistinct(grouped, depth) {
				for _, file := range grouped {
					names[file] = pathSuffix(file, depth)
				}
				resolved = true
				break
			}
		}
		if resolved {
			continue
		}

		// Identifiers that clean to the same path keep their raw form.
		counts := suffixCounts(grouped, maxDepth)
		for _, file := range grouped {
			if counts[pathSuffix(file, maxDepth)] > 1 {
				names[file] = file
			} else {
				names[file] = pathSuffix(file, maxDepth)
			}
		}
	}

	return names
}

func suffixCounts(files []string, depth int) map[string]int {
	counts := make(map[string]int, len(files))
	for _, file := range files {
		counts[pathSuffix(file, depth)]++
	}
	return counts
}

func suffixesDistinct(files []string, depth int) bool {
	for _, count := range suffixCounts(files, depth) {
		if count > 1 {
			return false
		}
	}
	return true
}

func pathParts(file string) []string {
	return strings.Split(strings.TrimPrefix(path.Clean(file), "/"), "/")
}

func pathSuffix(file string, depth int) string {
	parts := pathParts(file)
	if depth > len(parts) {
		depth = len(parts)
	}
	return strings.Join(parts[len(parts)-depth:], "/")
}
