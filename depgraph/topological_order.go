package depgraph

// Order returns the files of g dependency-first: for every edge A -> B, B comes before A.
//
// Files are emitted in post-order of a depth-first walk from the target that follows
// dependencies in discovery order, so the target is last. When imports form a cycle the
// order is best effort: whichever file of the cycle was reached first is emitted after the
// others. Files not reachable from the target are appended in discovery order; the result
// always holds every file of g exactly once.
func Order(g *DependencyGraph) []string {
	type frame struct {
		file string
		next int
	}

	seen := make(map[string]bool, len(g.files))
	order := make([]string, 0, len(g.files))

	walk := func(root string) {
		if seen[root] {
			return
		}
		seen[root] = true
		stack := []frame{{file: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := g.deps[top.file]
			if top.next < len(deps) {
				dep := deps[top.next]
				top.next++
				if !seen[dep] {
					seen[dep] = true
					stack = append(stack, frame{file: dep})
				}
				continue
			}
			order = append(order, top.file)
			stack = stack[:len(stack)-1]
		}
	}

	walk(g.target)
	for _, file := range g.files {
		walk(file)
	}

	return order
}
