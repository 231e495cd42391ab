// Package layout positions diagram nodes with four deterministic
// algorithms: grid, radial, layered tree and force-directed. Every
// algorithm is a pure function returning a fresh node slice with updated
// positions; input slices are never mutated and node identity is
// preserved. Degenerate inputs (no nodes, one node, self-referential or
// dangling edges) produce finite coordinates instead of errors.
package layout

import "math"

// Point is a 2-D canvas coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is the layout view of a diagram element. ID matches the schema
// table ID when the node set is built from a model.
type Node struct {
	ID       string `json:"id"`
	Position Point  `json:"position"`
}

// Edge is a directed connection between two node IDs. Edges naming
// unknown nodes are ignored.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Direction selects the main axis and its sign for the tree layout.
type Direction string

const (
	TopBottom Direction = "TB"
	LeftRight Direction = "LR"
	RightLeft Direction = "RL"
	BottomTop Direction = "BT"
)

// Options tunes an algorithm. Zero values fall back to the defaults, so
// the zero Options is always usable.
type Options struct {
	// Spacing is the distance between neighboring nodes on one axis.
	Spacing float64 `json:"spacing"`
	// Padding offsets the whole arrangement from the canvas origin.
	Padding float64 `json:"padding"`
	// GroupPadding is the distance between tree levels.
	GroupPadding float64 `json:"groupPadding"`
	// Direction orients the tree layout. Ignored by the other algorithms.
	Direction Direction `json:"direction"`
	// Iterations bounds the force-directed simulation.
	Iterations int `json:"iterations"`
}

const (
	defaultSpacing      = 250.0
	defaultPadding      = 50.0
	defaultGroupPadding = 200.0
	defaultIterations   = 50

	radialCenterX = 400.0
	radialCenterY = 300.0
)

func (o Options) withDefaults() Options {
	if o.Spacing <= 0 {
		o.Spacing = defaultSpacing
	}
	if o.Padding <= 0 {
		o.Padding = defaultPadding
	}
	if o.GroupPadding <= 0 {
		o.GroupPadding = defaultGroupPadding
	}
	switch o.Direction {
	case TopBottom, LeftRight, RightLeft, BottomTop:
	default:
		o.Direction = TopBottom
	}
	if o.Iterations <= 0 {
		o.Iterations = defaultIterations
	}
	return o
}

// Grid arranges nodes row by row into a square-ish grid of
// ceil(sqrt(n)) columns.
func Grid(nodes []Node, opts Options) []Node {
	o := opts.withDefaults()
	out := make([]Node, len(nodes))
	if len(nodes) == 0 {
		return out
	}
	cols := int(math.Ceil(math.Sqrt(float64(len(nodes)))))
	for i, n := range nodes {
		n.Position = Point{
			X: o.Padding + float64(i%cols)*o.Spacing,
			Y: o.Padding + float64(i/cols)*o.Spacing,
		}
		out[i] = n
	}
	return out
}

// Radial places nodes evenly on a circle whose radius grows with the
// node count so neighbors stay apart.
func Radial(nodes []Node, opts Options) []Node {
	out := make([]Node, len(nodes))
	if len(nodes) == 0 {
		return out
	}
	radius := math.Max(300, float64(len(nodes))*50)
	step := 2 * math.Pi / float64(len(nodes))
	for i, n := range nodes {
		angle := float64(i) * step
		n.Position = Point{
			X: radialCenterX + radius*math.Cos(angle),
			Y: radialCenterY + radius*math.Sin(angle),
		}
		out[i] = n
	}
	return out
}
