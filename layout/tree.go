package layout

// Tree assigns nodes to levels by breadth-first traversal and spaces
// levels along the main axis chosen by opts.Direction. Roots are the
// nodes no edge points at; when a cycle leaves no such node the first
// node seeds the traversal. Nodes the traversal never reaches are placed
// together on the level after the deepest reached one, in input order.
func Tree(nodes []Node, edges []Edge, opts Options) []Node {
	o := opts.withDefaults()
	out := make([]Node, len(nodes))
	if len(nodes) == 0 {
		return out
	}

	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}

	adjacency := make(map[string][]string)
	indegree := make(map[string]int)
	for _, e := range edges {
		if e.Source == e.Target {
			continue
		}
		if _, ok := index[e.Source]; !ok {
			continue
		}
		if _, ok := index[e.Target]; !ok {
			continue
		}
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
		indegree[e.Target]++
	}

	levels := make(map[string]int, len(nodes))
	var queue []string
	for _, n := range nodes {
		if indegree[n.ID] == 0 {
			levels[n.ID] = 0
			queue = append(queue, n.ID)
		}
	}
	if len(queue) == 0 {
		levels[nodes[0].ID] = 0
		queue = append(queue, nodes[0].ID)
	}

	maxLevel := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[id] {
			if _, seen := levels[next]; seen {
				continue
			}
			levels[next] = levels[id] + 1
			if levels[next] > maxLevel {
				maxLevel = levels[next]
			}
			queue = append(queue, next)
		}
	}

	// Anything a cycle kept unreachable lands on its own trailing level.
	fallback := maxLevel + 1
	for _, n := range nodes {
		if _, ok := levels[n.ID]; !ok {
			levels[n.ID] = fallback
			maxLevel = fallback
		}
	}

	offsets := make(map[int]int)
	for i, n := range nodes {
		level := levels[n.ID]
		cross := o.Padding + float64(offsets[level])*o.Spacing
		offsets[level]++

		main := o.Padding + float64(level)*o.GroupPadding
		if o.Direction == BottomTop || o.Direction == RightLeft {
			main = o.Padding + float64(maxLevel-level)*o.GroupPadding
		}

		n.Position = Point{X: main, Y: cross}
		if o.Direction == TopBottom || o.Direction == BottomTop {
			n.Position = Point{X: cross, Y: main}
		}
		out[i] = n
	}
	return out
}
