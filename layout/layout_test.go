package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaforge/layout"
	"schemaforge/schema"
)

func nodes(ids ...string) []layout.Node {
	out := make([]layout.Node, len(ids))
	for i, id := range ids {
		out[i] = layout.Node{ID: id}
	}
	return out
}

func ids(nodes []layout.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func byID(t *testing.T, nodes []layout.Node, id string) layout.Node {
	t.Helper()
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("node %s not placed", id)
	return layout.Node{}
}

func distance(a, b layout.Node) float64 {
	return math.Hypot(b.Position.X-a.Position.X, b.Position.Y-a.Position.Y)
}

func assertFinite(t *testing.T, placed []layout.Node) {
	t.Helper()
	for _, n := range placed {
		require.False(t, math.IsNaN(n.Position.X) || math.IsInf(n.Position.X, 0), "node %s x", n.ID)
		require.False(t, math.IsNaN(n.Position.Y) || math.IsInf(n.Position.Y, 0), "node %s y", n.ID)
	}
}

func TestGrid(t *testing.T) {
	placed := layout.Grid(nodes("a", "b", "c", "d", "e"), layout.Options{})

	// Five nodes wrap into a three-column grid.
	require.Len(t, placed, 5)
	assert.Equal(t, layout.Point{X: 50, Y: 50}, placed[0].Position)
	assert.Equal(t, layout.Point{X: 300, Y: 50}, placed[1].Position)
	assert.Equal(t, layout.Point{X: 550, Y: 50}, placed[2].Position)
	assert.Equal(t, layout.Point{X: 50, Y: 300}, placed[3].Position)
	assert.Equal(t, layout.Point{X: 300, Y: 300}, placed[4].Position)
}

func TestGrid_CustomOptions(t *testing.T) {
	placed := layout.Grid(nodes("a", "b"), layout.Options{Spacing: 100, Padding: 10})

	assert.Equal(t, layout.Point{X: 10, Y: 10}, placed[0].Position)
	assert.Equal(t, layout.Point{X: 110, Y: 10}, placed[1].Position)
}

func TestRadial(t *testing.T) {
	placed := layout.Radial(nodes("a", "b", "c", "d"), layout.Options{})

	require.Len(t, placed, 4)
	assert.InDelta(t, 700, placed[0].Position.X, 1e-9)
	assert.InDelta(t, 300, placed[0].Position.Y, 1e-9)
	assert.InDelta(t, 400, placed[1].Position.X, 1e-9)
	assert.InDelta(t, 600, placed[1].Position.Y, 1e-9)
	assert.InDelta(t, 100, placed[2].Position.X, 1e-9)
	assert.InDelta(t, 300, placed[2].Position.Y, 1e-9)
}

func TestRadial_RadiusGrowsWithCount(t *testing.T) {
	placed := layout.Radial(nodes("a", "b", "c", "d", "e", "f", "g", "h", "i", "j"), layout.Options{})

	// Ten nodes push the radius to 500.
	assert.InDelta(t, 900, placed[0].Position.X, 1e-9)
	assert.InDelta(t, 300, placed[0].Position.Y, 1e-9)
}

func TestTree_Chain(t *testing.T) {
	edges := []layout.Edge{{Source: "a", Target: "b"}, {Source: "b", Target: "c"}}

	placed := layout.Tree(nodes("a", "b", "c"), edges, layout.Options{})

	a, b, c := byID(t, placed, "a"), byID(t, placed, "b"), byID(t, placed, "c")
	assert.Equal(t, a.Position.X, b.Position.X)
	assert.Equal(t, b.Position.X, c.Position.X)
	assert.Less(t, a.Position.Y, b.Position.Y)
	assert.Less(t, b.Position.Y, c.Position.Y)
}

func TestTree_Directions(t *testing.T) {
	ns := nodes("a", "b", "c")
	edges := []layout.Edge{{Source: "a", Target: "b"}, {Source: "b", Target: "c"}}

	lr := layout.Tree(ns, edges, layout.Options{Direction: layout.LeftRight})
	assert.Less(t, byID(t, lr, "a").Position.X, byID(t, lr, "b").Position.X)
	assert.Less(t, byID(t, lr, "b").Position.X, byID(t, lr, "c").Position.X)

	rl := layout.Tree(ns, edges, layout.Options{Direction: layout.RightLeft})
	assert.Greater(t, byID(t, rl, "a").Position.X, byID(t, rl, "b").Position.X)
	assert.Greater(t, byID(t, rl, "b").Position.X, byID(t, rl, "c").Position.X)

	bt := layout.Tree(ns, edges, layout.Options{Direction: layout.BottomTop})
	assert.Greater(t, byID(t, bt, "a").Position.Y, byID(t, bt, "b").Position.Y)
	assert.Greater(t, byID(t, bt, "b").Position.Y, byID(t, bt, "c").Position.Y)
}

func TestTree_SiblingsShareLevel(t *testing.T) {
	edges := []layout.Edge{{Source: "a", Target: "b"}, {Source: "a", Target: "c"}}

	placed := layout.Tree(nodes("a", "b", "c"), edges, layout.Options{})

	b, c := byID(t, placed, "b"), byID(t, placed, "c")
	assert.Equal(t, b.Position.Y, c.Position.Y)
	assert.NotEqual(t, b.Position.X, c.Position.X)
}

func TestTree_CycleStartsFromFirstNode(t *testing.T) {
	edges := []layout.Edge{{Source: "a", Target: "b"}, {Source: "b", Target: "a"}}

	placed := layout.Tree(nodes("a", "b"), edges, layout.Options{})

	assert.Less(t, byID(t, placed, "a").Position.Y, byID(t, placed, "b").Position.Y)
}

func TestTree_UnreachableNodesGetTrailingLevel(t *testing.T) {
	// c and d form a cycle nothing points into, so the traversal from a
	// never reaches them.
	edges := []layout.Edge{
		{Source: "a", Target: "b"},
		{Source: "c", Target: "d"},
		{Source: "d", Target: "c"},
	}

	placed := layout.Tree(nodes("a", "b", "c", "d"), edges, layout.Options{})

	b, c, d := byID(t, placed, "b"), byID(t, placed, "c"), byID(t, placed, "d")
	assert.Equal(t, c.Position.Y, d.Position.Y)
	assert.Greater(t, c.Position.Y, b.Position.Y)
	assertFinite(t, placed)
}

func TestTree_IgnoresSelfAndDanglingEdges(t *testing.T) {
	edges := []layout.Edge{
		{Source: "a", Target: "a"},
		{Source: "a", Target: "ghost"},
		{Source: "ghost", Target: "b"},
	}

	placed := layout.Tree(nodes("a", "b"), edges, layout.Options{})

	// Both nodes stay roots on level zero.
	assert.Equal(t, byID(t, placed, "a").Position.Y, byID(t, placed, "b").Position.Y)
	assertFinite(t, placed)
}

func TestForceDirected_EdgePullsTowardRestLength(t *testing.T) {
	ns := []layout.Node{
		{ID: "a", Position: layout.Point{X: 50, Y: 50}},
		{ID: "b", Position: layout.Point{X: 450, Y: 50}},
	}
	edges := []layout.Edge{{Source: "a", Target: "b"}}

	placed := layout.ForceDirected(ns, edges, layout.Options{})

	assertFinite(t, placed)
	assert.Less(t, distance(placed[0], placed[1]), 400.0)
	assert.Greater(t, distance(placed[0], placed[1]), 1.0)
}

func TestForceDirected_UnlinkedNodesRepel(t *testing.T) {
	ns := []layout.Node{
		{ID: "a", Position: layout.Point{X: 0, Y: 0}},
		{ID: "b", Position: layout.Point{X: 100, Y: 0}},
	}

	placed := layout.ForceDirected(ns, nil, layout.Options{})

	assertFinite(t, placed)
	assert.Greater(t, distance(placed[0], placed[1]), 100.0)
}

func TestForceDirected_SelfEdgeAndSinglePoint(t *testing.T) {
	ns := []layout.Node{{ID: "a", Position: layout.Point{X: 5, Y: 5}}}
	placed := layout.ForceDirected(ns, []layout.Edge{{Source: "a", Target: "a"}}, layout.Options{})

	require.Len(t, placed, 1)
	assert.Equal(t, layout.Point{X: 5, Y: 5}, placed[0].Position)
}

func TestAlgorithmsTolerateEmptyInput(t *testing.T) {
	assert.Empty(t, layout.Grid(nil, layout.Options{}))
	assert.Empty(t, layout.Radial(nil, layout.Options{}))
	assert.Empty(t, layout.Tree(nil, nil, layout.Options{}))
	assert.Empty(t, layout.ForceDirected(nil, nil, layout.Options{}))
}

func TestAlgorithmsPlaceSingleNode(t *testing.T) {
	single := nodes("only")

	assert.Equal(t, layout.Point{X: 50, Y: 50}, layout.Grid(single, layout.Options{})[0].Position)
	assertFinite(t, layout.Radial(single, layout.Options{}))
	assertFinite(t, layout.Tree(single, nil, layout.Options{}))
	assertFinite(t, layout.ForceDirected(single, nil, layout.Options{}))
}

func TestAlgorithmsAreDeterministic(t *testing.T) {
	ns := layout.Grid(nodes("a", "b", "c", "d", "e", "f"), layout.Options{})
	edges := []layout.Edge{
		{Source: "a", Target: "b"},
		{Source: "a", Target: "c"},
		{Source: "b", Target: "d"},
	}

	assert.Equal(t, layout.Grid(ns, layout.Options{}), layout.Grid(ns, layout.Options{}))
	assert.Equal(t, layout.Radial(ns, layout.Options{}), layout.Radial(ns, layout.Options{}))
	assert.Equal(t, layout.Tree(ns, edges, layout.Options{}), layout.Tree(ns, edges, layout.Options{}))
	assert.Equal(t, layout.ForceDirected(ns, edges, layout.Options{}), layout.ForceDirected(ns, edges, layout.Options{}))
}

func TestAlgorithmsPreserveIdentityAndInput(t *testing.T) {
	ns := nodes("a", "b", "c")
	ns[1].Position = layout.Point{X: 9, Y: 9}
	want := []string{"a", "b", "c"}

	assert.Equal(t, want, ids(layout.Grid(ns, layout.Options{})))
	assert.Equal(t, want, ids(layout.Radial(ns, layout.Options{})))
	assert.Equal(t, want, ids(layout.Tree(ns, nil, layout.Options{})))
	assert.Equal(t, want, ids(layout.ForceDirected(ns, nil, layout.Options{})))

	// The caller's slice keeps its original positions.
	assert.Equal(t, layout.Point{}, ns[0].Position)
	assert.Equal(t, layout.Point{X: 9, Y: 9}, ns[1].Position)
}

func TestNodesAndEdgesFromModel(t *testing.T) {
	m := schema.NewModel()
	users := schema.NewTable("users")
	users.Columns = append(users.Columns, schema.NewColumn("id", schema.TypeInt))
	users.Columns[0].IsPrimaryKey = true
	posts := schema.NewTable("posts")
	posts.Columns = append(posts.Columns,
		schema.NewColumn("id", schema.TypeInt),
		schema.NewColumn("user_id", schema.TypeInt),
	)
	m.Tables = append(m.Tables, users, posts)
	require.True(t, m.LinkForeignKey("posts", "user_id", "users", "id"))

	ns := layout.NodesFromModel(m)
	require.Len(t, ns, 2)
	assert.Equal(t, m.Tables[0].ID, ns[0].ID)
	assert.Equal(t, m.Tables[1].ID, ns[1].ID)
	assert.Equal(t, layout.Point{X: 50, Y: 50}, ns[0].Position)
	assert.Equal(t, layout.Point{X: 300, Y: 50}, ns[1].Position)

	es := layout.EdgesFromModel(m)
	require.Len(t, es, 1)
	assert.Equal(t, m.Tables[0].ID, es[0].Source)
	assert.Equal(t, m.Tables[1].ID, es[0].Target)

	assert.Empty(t, layout.NodesFromModel(nil))
	assert.Empty(t, layout.EdgesFromModel(nil))
}
