package layout

import "schemaforge/schema"

// NodesFromModel builds one node per table, keyed by table ID, with a
// default grid placement so iterative algorithms start from spread-out
// positions instead of a single point.
func NodesFromModel(m *schema.Model) []Node {
	if m == nil {
		return []Node{}
	}
	nodes := make([]Node, len(m.Tables))
	for i, t := range m.Tables {
		nodes[i] = Node{ID: t.ID}
	}
	return Grid(nodes, Options{})
}

// EdgesFromModel maps the model's relationship edges onto layout edges.
func EdgesFromModel(m *schema.Model) []Edge {
	if m == nil {
		return []Edge{}
	}
	edges := make([]Edge, len(m.Edges))
	for i, e := range m.Edges {
		edges[i] = Edge{Source: e.SourceTable, Target: e.TargetTable}
	}
	return edges
}
