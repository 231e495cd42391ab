package schema

import "strings"

// SortByDependencies orders tables so that referenced tables come before the
// tables referencing them, letting generated DDL and seed scripts execute
// top to bottom. Circular references are broken with a scoring heuristic so
// the result is always a complete, deterministic permutation of the input.
// The input slice is not modified.
func SortByDependencies(tables []Table) []Table {
	sorted := make([]Table, 0, len(tables))
	processed := make(map[string]bool)

	deps := make(map[string][]string, len(tables))
	for _, t := range tables {
		deps[key(t.Name)] = t.Dependencies()
	}

	for len(sorted) < len(tables) {
		added := false

		// Pass 1: take every table whose dependencies are all placed.
		for _, t := range tables {
			if processed[key(t.Name)] {
				continue
			}

			ready := true
			for _, dep := range deps[key(t.Name)] {
				if !processed[key(dep)] {
					ready = false
					break
				}
			}

			if ready {
				sorted = append(sorted, t)
				processed[key(t.Name)] = true
				added = true
			}
		}

		// Pass 2: nothing placed means a cycle. Score the remaining tables
		// and force the best candidate through: fewer unplaced dependencies
		// is better, sitting on a two-table cycle is better still, ties go
		// to the greater name so the order never depends on map iteration.
		if !added {
			best := -1
			bestScore := -999999

			for i, t := range tables {
				if processed[key(t.Name)] {
					continue
				}

				score := 0
				for _, dep := range deps[key(t.Name)] {
					if !processed[key(dep)] {
						score -= 100
					}
				}
				if inCycle(t.Name, deps, processed) {
					score += 500
				}

				if score > bestScore || (score == bestScore && (best < 0 || t.Name > tables[best].Name)) {
					bestScore = score
					best = i
				}
			}

			if best < 0 {
				break
			}
			sorted = append(sorted, tables[best])
			processed[key(tables[best].Name)] = true
		}
	}

	return sorted
}

// inCycle reports whether one of the table's unplaced dependencies depends
// back on the table itself.
func inCycle(name string, deps map[string][]string, processed map[string]bool) bool {
	for _, dep := range deps[key(name)] {
		if processed[key(dep)] {
			continue
		}
		for _, back := range deps[key(dep)] {
			if key(back) == key(name) {
				return true
			}
		}
	}
	return false
}

func key(name string) string { return strings.ToLower(name) }
